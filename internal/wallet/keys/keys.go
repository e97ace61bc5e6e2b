package keys

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const (
	// PrivateKeyLength is the secp256k1 scalar size in bytes.
	PrivateKeyLength = 32
	// PublicKeyLength is the uncompressed SEC1 form: one prefix byte plus
	// two 32-byte curve coordinates.
	PublicKeyLength = 65

	uncompressedPrefix = 0x04
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// PublicKey expands a 32-byte private key scalar to its 65-byte uncompressed
// public key via scalar multiplication of the curve base point. A scalar
// outside the valid curve range is an error.
func PublicKey(privateKey []byte) ([]byte, error) {
	ecdsaKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}

	return crypto.FromECDSAPub(&ecdsaKey.PublicKey), nil
}

// AddressFromPublicKey reduces an uncompressed public key to its 20-byte
// address: the low-order 20 bytes of Keccak-256 over the 64-byte coordinate
// portion (prefix byte stripped). Anything other than a 65-byte uncompressed
// key is a caller contract violation.
func AddressFromPublicKey(publicKey []byte) (common.Address, error) {
	if len(publicKey) != PublicKeyLength {
		return common.Address{}, errors.Errorf("invalid public key length %d, expected %d", len(publicKey), PublicKeyLength)
	}

	if publicKey[0] != uncompressedPrefix {
		return common.Address{}, errors.Errorf("invalid public key prefix 0x%02x, expected uncompressed form", publicKey[0])
	}

	digest := crypto.Keccak256(publicKey[1:])

	return common.BytesToAddress(digest[common.HashLength-common.AddressLength:]), nil
}

// AddressFromPrivateKey derives the address belonging to a private key.
func AddressFromPrivateKey(privateKey []byte) (common.Address, error) {
	publicKey, err := PublicKey(privateKey)
	if err != nil {
		return common.Address{}, err
	}

	return AddressFromPublicKey(publicKey)
}

// ValidateAddress parses a textual address. Anything not matching
// 0x followed by exactly 40 hex characters is rejected.
func ValidateAddress(address string) (common.Address, error) {
	if !addressPattern.MatchString(address) {
		return common.Address{}, errors.Errorf("invalid address %q: expected 0x followed by 40 hex characters", address)
	}

	return common.HexToAddress(address), nil
}
