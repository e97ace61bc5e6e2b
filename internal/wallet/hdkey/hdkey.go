package hdkey

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

const (
	// KeyLength is the private key scalar size in bytes.
	KeyLength = 32
	// ChainCodeLength is the BIP32 chain code size in bytes.
	ChainCodeLength = 32
	// MinSeedLength and MaxSeedLength bound the seed material BIP32
	// accepts (128 to 512 bits).
	MinSeedLength = 16
	MaxSeedLength = 64
)

// ExtendedKey is a derived private key together with its chain code. Each
// derivation step is a pure transformation of (parent key, index); nothing
// is cached or shared between calls.
type ExtendedKey struct {
	PrivateKey []byte // 32 bytes
	ChainCode  []byte // 32 bytes
}

// Zero clears the private key material in place.
func (k *ExtendedKey) Zero() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
}

// DerivePath walks the derivation path over a BIP39 seed and returns the
// resulting extended key. The master key comes from the seed via the BIP32
// HMAC-SHA512 construction; hardened segments derive from the parent private
// key, non-hardened ones from the parent public key. An invalid child key
// (scalar out of range or zero) is a hard failure for this path.
func DerivePath(path string, seed []byte) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	if len(seed) < MinSeedLength || len(seed) > MaxSeedLength {
		return nil, errors.Errorf("seed is %d bytes, expected between %d and %d", len(seed), MinSeedLength, MaxSeedLength)
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	// The scalar can come back shorter than 32 bytes when it has leading
	// zero bytes; left-pad so downstream length contracts hold.
	privateKey := make([]byte, KeyLength)
	if len(key.Key) > KeyLength {
		return nil, errors.Errorf("derived private key is %d bytes, expected at most %d", len(key.Key), KeyLength)
	}
	copy(privateKey[KeyLength-len(key.Key):], key.Key)

	chainCode := make([]byte, ChainCodeLength)
	copy(chainCode, key.ChainCode)

	return &ExtendedKey{
		PrivateKey: privateKey,
		ChainCode:  chainCode,
	}, nil
}
