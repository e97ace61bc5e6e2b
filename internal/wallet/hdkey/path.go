package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// HardenedOffset is added to a path index to mark hardened derivation
// (BIP32: the step uses the parent private key, not its public key).
const HardenedOffset uint32 = 0x80000000

// Path is an ordered list of BIP32 child indices with hardened bits applied.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
type Path []uint32

// ParsePath parses a BIP44-style derivation path string. The path must start
// with "m"; segments are /-separated unsigned integers, an apostrophe suffix
// marks a segment as hardened. Empty or non-numeric segments and indices
// that do not fit 31 bits are rejected.
func ParsePath(path string) (Path, error) {
	if path == "" || path[0] != 'm' {
		return nil, errors.Errorf("invalid derivation path %q: must start with \"m\"", path)
	}

	rest := path[1:]
	if rest == "" {
		return Path{}, nil
	}

	if rest[0] != '/' {
		return nil, errors.Errorf("invalid derivation path %q: expected \"/\" after root marker", path)
	}

	segments := strings.Split(rest[1:], "/")
	indices := make(Path, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			return nil, errors.Errorf("invalid derivation path %q: empty segment", path)
		}

		hardened := false
		if strings.HasSuffix(segment, "'") {
			hardened = true
			segment = segment[:len(segment)-1]
		}

		index, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid path segment %q", segment)
		}

		if index >= uint64(HardenedOffset) {
			return nil, errors.Errorf("path segment %q exceeds the hardened bit boundary", segment)
		}

		idx := uint32(index)
		if hardened {
			idx += HardenedOffset
		}

		indices = append(indices, idx)
	}

	return indices, nil
}

// String renders the path in the canonical "m/44'/60'/..." text form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')

	for _, index := range p {
		if index >= HardenedOffset {
			fmt.Fprintf(&b, "/%d'", index-HardenedOffset)
		} else {
			fmt.Fprintf(&b, "/%d", index)
		}
	}

	return b.String()
}
