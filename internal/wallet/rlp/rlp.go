// Package rlp implements the recursive length-prefix serialization used for
// the transaction wire format: byte strings and nested lists of byte
// strings, each preceded by a length prefix, with unsigned integers
// normalized to their minimal big-endian representation.
package rlp

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

const (
	shortStringBase byte = 0x80
	longStringBase  byte = 0xb7
	shortListBase   byte = 0xc0
	longListBase    byte = 0xf7

	// maxShortLength is the longest payload a single-byte prefix can carry.
	maxShortLength = 55
)

// Item is a node in the encoding: either a byte string or a list of items.
// The tagged form keeps the encoder's recursion exhaustive instead of
// dispatching on dynamic types. The zero value is the empty byte string.
type Item struct {
	str    []byte
	list   []*Item
	isList bool
}

// Bytes wraps a byte string. The bytes are written verbatim, without any
// numeric normalization; use Uint64 or BigInt for integer fields.
func Bytes(b []byte) *Item {
	return &Item{str: b}
}

// Uint64 converts v to its minimal big-endian byte string; zero encodes as
// the empty string, never as a single zero byte.
func Uint64(v uint64) *Item {
	if v == 0 {
		return &Item{}
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)

	start := 0
	for buf[start] == 0 {
		start++
	}

	return &Item{str: buf[start:]}
}

// BigInt converts v to its minimal big-endian byte string with the same
// zero normalization as Uint64. Nil and negative values are contract
// violations, not encodable states.
func BigInt(v *big.Int) (*Item, error) {
	if v == nil {
		return nil, errors.New("nil integer")
	}

	if v.Sign() < 0 {
		return nil, errors.Errorf("negative integer %s", v)
	}

	if v.Sign() == 0 {
		return &Item{}, nil
	}

	return &Item{str: v.Bytes()}, nil
}

// List wraps items into a list node.
func List(items ...*Item) *Item {
	return &Item{list: items, isList: true}
}

// IsList reports whether the item is a list node.
func (i *Item) IsList() bool {
	return i.isList
}

// Str returns the byte string of a string node (nil for lists).
func (i *Item) Str() []byte {
	return i.str
}

// Items returns the children of a list node (nil for strings).
func (i *Item) Items() []*Item {
	return i.list
}

// Uint interprets a string node as a big-endian unsigned integer.
func (i *Item) Uint() *big.Int {
	return new(big.Int).SetBytes(i.str)
}

// Encode serializes item:
//   - a single byte below 0x80 is its own encoding;
//   - a string of at most 55 bytes gets a one-byte prefix 0x80+len;
//   - a longer string gets 0xb7+lenOfLen followed by the big-endian length;
//   - lists apply the same rules with bases 0xc0/0xf7 over the concatenated
//     encodings of their elements.
//
// Encoding is a pure function of the item tree.
func Encode(item *Item) []byte {
	if item.isList {
		var payload []byte
		for _, child := range item.list {
			payload = append(payload, Encode(child)...)
		}

		return append(encodeLength(len(payload), shortListBase, longListBase), payload...)
	}

	if len(item.str) == 1 && item.str[0] < shortStringBase {
		return []byte{item.str[0]}
	}

	return append(encodeLength(len(item.str), shortStringBase, longStringBase), item.str...)
}

func encodeLength(length int, shortBase, longBase byte) []byte {
	if length <= maxShortLength {
		return []byte{shortBase + byte(length)}
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(length))

	start := 0
	for buf[start] == 0 {
		start++
	}
	lengthBytes := buf[start:]

	return append([]byte{longBase + byte(len(lengthBytes))}, lengthBytes...)
}
