// Package txn models the account-based transfer and its canonical wire
// encodings. A transaction exists in two encoded forms: the unsigned
// nine-tuple used as signing input (chain id plus two empty placeholder
// strings) and the signed nine-tuple carrying v, r, s for broadcast.
package txn

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/tx-signer/internal/wallet/rlp"
)

// SignatureComponentLength is the fixed size of the r and s signature
// components in the signed encoding.
const SignatureComponentLength = 32

// Transaction is the ordered field tuple of a transfer before signing.
// GasPrice and Value are wei-denominated; To is always encoded as its raw
// 20 bytes, never numerically normalized.
type Transaction struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       common.Address
	Value    *big.Int
	Data     []byte
	ChainID  uint64
}

// fieldItems assembles the six leading items shared by the unsigned and
// signed encodings.
func (t *Transaction) fieldItems() ([]*rlp.Item, error) {
	gasPrice, err := rlp.BigInt(t.GasPrice)
	if err != nil {
		return nil, errors.Wrap(err, "invalid gas price")
	}

	value, err := rlp.BigInt(t.Value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid value")
	}

	return []*rlp.Item{
		rlp.Uint64(t.Nonce),
		gasPrice,
		rlp.Uint64(t.GasLimit),
		rlp.Bytes(t.To.Bytes()),
		value,
		rlp.Bytes(t.Data),
	}, nil
}

// EncodeUnsigned produces the replay-protected pre-signature encoding: the
// field tuple followed by the chain id and two empty strings standing in for
// r and s. Hashing this is the signing input.
func (t *Transaction) EncodeUnsigned() ([]byte, error) {
	fields, err := t.fieldItems()
	if err != nil {
		return nil, err
	}

	fields = append(fields, rlp.Uint64(t.ChainID), rlp.Bytes(nil), rlp.Bytes(nil))

	return rlp.Encode(rlp.List(fields...)), nil
}

// EncodeSigned produces the broadcast form with v, r, s appended. The v
// value is minimally byte-encoded as an integer; r and s are written as
// fixed 32-byte strings with no zero-stripping.
func (t *Transaction) EncodeSigned(v *big.Int, r []byte, s []byte) ([]byte, error) {
	if len(r) != SignatureComponentLength {
		return nil, errors.Errorf("invalid r length %d, expected %d", len(r), SignatureComponentLength)
	}

	if len(s) != SignatureComponentLength {
		return nil, errors.Errorf("invalid s length %d, expected %d", len(s), SignatureComponentLength)
	}

	fields, err := t.fieldItems()
	if err != nil {
		return nil, err
	}

	vItem, err := rlp.BigInt(v)
	if err != nil {
		return nil, errors.Wrap(err, "invalid v")
	}

	fields = append(fields, vItem, rlp.Bytes(r), rlp.Bytes(s))

	return rlp.Encode(rlp.List(fields...)), nil
}
