package seed_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tx-signer/internal/wallet/seed"
)

const testMnemonic = "test test test test test test test test test test test test test junk"

func TestDeriveKnownVector(t *testing.T) {
	got := seed.Derive(testMnemonic, "")

	require.Len(t, got, seed.Length)
	assert.Equal(t,
		"5cccec05c8c5e0cc78c03ac8818d3937202000b86ecf7d3f540ee10dc3ddd5ff"+
			"8096055994053ab73588a6fdc5d9c97228f27619c2c3e25199f41721ea6fcfcb",
		hex.EncodeToString(got))
}

func TestDeriveDeterminism(t *testing.T) {
	first := seed.Derive(testMnemonic, "secret")
	second := seed.Derive(testMnemonic, "secret")

	assert.Equal(t, first, second)
}

func TestDerivePassphraseChangesSeed(t *testing.T) {
	withEmpty := seed.Derive(testMnemonic, "")
	withPassphrase := seed.Derive(testMnemonic, "TREZOR")

	assert.NotEqual(t, withEmpty, withPassphrase)
}

func TestDeriveEmptyInputs(t *testing.T) {
	// Derivation must not fail for odd but well-formed strings.
	got := seed.Derive("", "")
	assert.Len(t, got, seed.Length)

	got = seed.Derive(strings.Repeat("word ", 100), "")
	assert.Len(t, got, seed.Length)
}

func TestZero(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	seed.Zero(buf)

	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}
