package rlp_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/tx-signer/internal/wallet/rlp"
)

func TestEncodeStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{name: "empty string", input: nil, expected: []byte{0x80}},
		{name: "single low byte", input: []byte{0x00}, expected: []byte{0x00}},
		{name: "single byte below threshold", input: []byte{0x7f}, expected: []byte{0x7f}},
		{name: "single byte at threshold", input: []byte{0x80}, expected: []byte{0x81, 0x80}},
		{name: "dog", input: []byte("dog"), expected: append([]byte{0x83}, []byte("dog")...)},
		{
			name:     "55 bytes",
			input:    bytes.Repeat([]byte{0xaa}, 55),
			expected: append([]byte{0xb7}, bytes.Repeat([]byte{0xaa}, 55)...),
		},
		{
			name:     "56 bytes",
			input:    bytes.Repeat([]byte{0xaa}, 56),
			expected: append([]byte{0xb8, 0x38}, bytes.Repeat([]byte{0xaa}, 56)...),
		},
		{
			name:  "lorem ipsum",
			input: []byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit"),
			expected: append([]byte{0xb8, 0x38},
				[]byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit")...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rlp.Encode(rlp.Bytes(tt.input)))
		})
	}
}

func TestEncodeIntegers(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []byte
	}{
		{name: "zero is the empty string", value: 0, expected: []byte{0x80}},
		{name: "small integer", value: 15, expected: []byte{0x0f}},
		{name: "threshold byte", value: 0x80, expected: []byte{0x81, 0x80}},
		{name: "1024", value: 1024, expected: []byte{0x82, 0x04, 0x00}},
		{name: "gas price 1 gwei", value: 1_000_000_000, expected: []byte{0x84, 0x3b, 0x9a, 0xca, 0x00}},
		{name: "gas limit 21000", value: 21000, expected: []byte{0x82, 0x52, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rlp.Encode(rlp.Uint64(tt.value)))
		})
	}
}

func TestBigIntMatchesUint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 255, 256, 21000, 1_000_000_000} {
		item, err := rlp.BigInt(new(big.Int).SetUint64(v))
		require.NoError(t, err)

		assert.Equal(t, rlp.Encode(rlp.Uint64(v)), rlp.Encode(item), "value %d", v)
	}
}

func TestBigIntNoLeadingZeros(t *testing.T) {
	// 10^16 wei (0.01 ether) minimally encodes to 7 bytes.
	item, err := rlp.BigInt(new(big.Int).SetUint64(10_000_000_000_000_000))
	require.NoError(t, err)

	assert.Equal(t, []byte{0x87, 0x23, 0x86, 0xf2, 0x6f, 0xc1, 0x00, 0x00}, rlp.Encode(item))
}

func TestBigIntContractViolations(t *testing.T) {
	_, err := rlp.BigInt(nil)
	require.Error(t, err)

	_, err = rlp.BigInt(big.NewInt(-1))
	require.Error(t, err)
}

func TestEncodeLists(t *testing.T) {
	catDog := rlp.List(rlp.Bytes([]byte("cat")), rlp.Bytes([]byte("dog")))
	assert.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, rlp.Encode(catDog))

	empty := rlp.List()
	assert.Equal(t, []byte{0xc0}, rlp.Encode(empty))

	// The set-theoretic representation of three: [ [], [[]], [ [], [[]] ] ].
	nested := rlp.List(
		rlp.List(),
		rlp.List(rlp.List()),
		rlp.List(rlp.List(), rlp.List(rlp.List())),
	)
	assert.Equal(t, []byte{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0}, rlp.Encode(nested))
}

func TestEncodeLongList(t *testing.T) {
	items := make([]*rlp.Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, rlp.Bytes([]byte("abc")))
	}

	encoded := rlp.Encode(rlp.List(items...))
	// 20 elements of 4 bytes each: 80-byte payload needs the long form.
	assert.Equal(t, byte(0xf8), encoded[0])
	assert.Equal(t, byte(80), encoded[1])
	assert.Len(t, encoded, 82)
}

func TestRoundTrip(t *testing.T) {
	items := []*rlp.Item{
		rlp.Bytes(nil),
		rlp.Bytes([]byte{0x01}),
		rlp.Bytes([]byte("dog")),
		rlp.Bytes(bytes.Repeat([]byte{0x55}, 56)),
		rlp.Uint64(0),
		rlp.Uint64(1_000_000_000),
		rlp.List(),
		rlp.List(rlp.Bytes([]byte("cat")), rlp.Bytes([]byte("dog"))),
		rlp.List(rlp.Uint64(21000), rlp.List(rlp.Bytes([]byte{0xff}), rlp.Uint64(0))),
	}

	for _, item := range items {
		encoded := rlp.Encode(item)

		decoded, err := rlp.Decode(encoded)
		require.NoError(t, err)

		// Re-encoding the decoded tree must reproduce the original bytes.
		assert.Equal(t, encoded, rlp.Encode(decoded))
	}
}

func TestDecodeStructure(t *testing.T) {
	decoded, err := rlp.Decode([]byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'})
	require.NoError(t, err)

	require.True(t, decoded.IsList())
	require.Len(t, decoded.Items(), 2)
	assert.Equal(t, []byte("cat"), decoded.Items()[0].Str())
	assert.Equal(t, []byte("dog"), decoded.Items()[1].Str())
}

func TestDecodeUint(t *testing.T) {
	decoded, err := rlp.Decode([]byte{0x82, 0x52, 0x08})
	require.NoError(t, err)

	assert.Equal(t, uint64(21000), decoded.Uint().Uint64())
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty input", input: nil},
		{name: "truncated string", input: []byte{0x83, 'c', 'a'}},
		{name: "truncated list", input: []byte{0xc8, 0x83, 'c', 'a', 't'}},
		{name: "truncated long length", input: []byte{0xb8}},
		{name: "non-canonical single byte", input: []byte{0x81, 0x05}},
		{name: "non-canonical long form for short string", input: append([]byte{0xb8, 0x03}, []byte("cat")...)},
		{name: "length with leading zero", input: append([]byte{0xb9, 0x00, 0x38}, bytes.Repeat([]byte{0xaa}, 56)...)},
		{name: "trailing bytes", input: []byte{0x83, 'c', 'a', 't', 0x00}},
		{name: "list payload with truncated element", input: []byte{0xc2, 0x83, 'c'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rlp.Decode(tt.input)
			require.Error(t, err)
		})
	}
}
