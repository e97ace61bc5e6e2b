package keys_test

import (
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tx-signer/internal/wallet/hdkey"
	"github/chapool/tx-signer/internal/wallet/keys"
	"github/chapool/tx-signer/internal/wallet/seed"
)

const (
	testMnemonic = "test test test test test test test test test test test test test junk"
	testPath     = "m/44'/60'/0'/0/0"
)

var addressTextForm = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

func deriveTestKey(t *testing.T) []byte {
	t.Helper()

	key, err := hdkey.DerivePath(testPath, seed.Derive(testMnemonic, ""))
	require.NoError(t, err)

	return key.PrivateKey
}

func TestPublicKeyKnownVector(t *testing.T) {
	publicKey, err := keys.PublicKey(deriveTestKey(t))
	require.NoError(t, err)

	require.Len(t, publicKey, keys.PublicKeyLength)
	assert.Equal(t,
		"045dc2f66e11c9a24b82ba3edd3e9959389fb7b35a8d60d2fe80d719207d13e7fc"+
			"cdd692969375548dba0fa3c3062538792162907f5152fc6acb5ecf1174523729",
		hex.EncodeToString(publicKey))
}

func TestPublicKeyInvalidScalar(t *testing.T) {
	_, err := keys.PublicKey(make([]byte, keys.PrivateKeyLength)) // zero scalar
	require.Error(t, err)

	_, err = keys.PublicKey([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestAddressFromPublicKeyKnownVector(t *testing.T) {
	publicKey, err := keys.PublicKey(deriveTestKey(t))
	require.NoError(t, err)

	address, err := keys.AddressFromPublicKey(publicKey)
	require.NoError(t, err)

	assert.Equal(t, "0xe42FC5749F54Cde5889E5f14C8b330d4F4ab84b5", address.Hex())
	assert.Regexp(t, addressTextForm, address.Hex())
}

func TestAddressFromPublicKeyRejectsWrongLength(t *testing.T) {
	_, err := keys.AddressFromPublicKey(make([]byte, 64))
	require.Error(t, err)

	_, err = keys.AddressFromPublicKey(nil)
	require.Error(t, err)
}

func TestAddressFromPublicKeyRejectsCompressedForm(t *testing.T) {
	malformed := make([]byte, keys.PublicKeyLength)
	malformed[0] = 0x02

	_, err := keys.AddressFromPublicKey(malformed)
	require.Error(t, err)
}

func TestAddressFromPrivateKeyReferenceMnemonic(t *testing.T) {
	key, err := hdkey.DerivePath(testPath, seed.Derive("test test test test test test test test test test test junk", ""))
	require.NoError(t, err)

	address, err := keys.AddressFromPrivateKey(key.PrivateKey)
	require.NoError(t, err)

	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", address.Hex())
}

func TestValidateAddress(t *testing.T) {
	address, err := keys.ValidateAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	require.NoError(t, err)
	assert.Equal(t, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", address.Hex())
}

func TestValidateAddressRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "missing prefix", address: "8ba1f109551bD432803012645Ac136ddd64DBA72"},
		{name: "too short", address: "0x8ba1f109551bD432803012645Ac136ddd64DBA7"},
		{name: "too long", address: "0x8ba1f109551bD432803012645Ac136ddd64DBA7200"},
		{name: "non-hex characters", address: "0x8ba1f109551bD432803012645Ac136ddd64DBAZZ"},
		{name: "whitespace", address: " 0x8ba1f109551bD432803012645Ac136ddd64DBA72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := keys.ValidateAddress(tt.address)
			require.Error(t, err)
		})
	}
}
