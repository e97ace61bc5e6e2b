package rlp

import (
	"math"

	"github.com/pkg/errors"
)

// Decode parses a single encoded item. Canonicality is enforced: non-minimal
// lengths, single bytes that should have been self-delimiting, truncated
// payloads and trailing input are all rejected.
func Decode(data []byte) (*Item, error) {
	item, rest, err := decodeItem(data)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		return nil, errors.Errorf("%d trailing bytes after item", len(rest))
	}

	return item, nil
}

func decodeItem(data []byte) (*Item, []byte, error) {
	if len(data) == 0 {
		return nil, nil, errors.New("empty input")
	}

	prefix := data[0]

	switch {
	case prefix < shortStringBase:
		return &Item{str: data[:1]}, data[1:], nil

	case prefix <= longStringBase:
		length := int(prefix - shortStringBase)
		if len(data) < 1+length {
			return nil, nil, errors.Errorf("truncated string: need %d payload bytes, have %d", length, len(data)-1)
		}

		str := data[1 : 1+length]
		if length == 1 && str[0] < shortStringBase {
			return nil, nil, errors.New("non-canonical encoding: single byte below 0x80 must be self-delimiting")
		}

		return &Item{str: str}, data[1+length:], nil

	case prefix < shortListBase:
		length, rest, err := decodeLongLength(data, longStringBase)
		if err != nil {
			return nil, nil, err
		}
		if len(rest) < length {
			return nil, nil, errors.Errorf("truncated string: need %d payload bytes, have %d", length, len(rest))
		}

		return &Item{str: rest[:length]}, rest[length:], nil

	case prefix <= longListBase:
		length := int(prefix - shortListBase)
		if len(data) < 1+length {
			return nil, nil, errors.Errorf("truncated list: need %d payload bytes, have %d", length, len(data)-1)
		}

		items, err := decodeListPayload(data[1 : 1+length])
		if err != nil {
			return nil, nil, err
		}

		return &Item{list: items, isList: true}, data[1+length:], nil

	default:
		length, rest, err := decodeLongLength(data, longListBase)
		if err != nil {
			return nil, nil, err
		}
		if len(rest) < length {
			return nil, nil, errors.Errorf("truncated list: need %d payload bytes, have %d", length, len(rest))
		}

		items, err := decodeListPayload(rest[:length])
		if err != nil {
			return nil, nil, err
		}

		return &Item{list: items, isList: true}, rest[length:], nil
	}
}

// decodeLongLength reads the extended length that follows a long-form
// prefix, enforcing minimal encoding.
func decodeLongLength(data []byte, base byte) (int, []byte, error) {
	lenOfLen := int(data[0] - base)
	if len(data) < 1+lenOfLen {
		return 0, nil, errors.New("truncated length")
	}

	lengthBytes := data[1 : 1+lenOfLen]
	if lengthBytes[0] == 0 {
		return 0, nil, errors.New("non-canonical encoding: length has leading zero bytes")
	}

	var length uint64
	for _, b := range lengthBytes {
		length = length<<8 | uint64(b)
	}

	if length <= maxShortLength {
		return 0, nil, errors.New("non-canonical encoding: length fits the short form")
	}

	if length > math.MaxInt32 {
		return 0, nil, errors.Errorf("item length %d too large", length)
	}

	return int(length), data[1+lenOfLen:], nil
}

func decodeListPayload(payload []byte) ([]*Item, error) {
	items := []*Item{}

	for len(payload) > 0 {
		item, rest, err := decodeItem(payload)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		payload = rest
	}

	return items, nil
}
