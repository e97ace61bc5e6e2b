package txn

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// weiDecimals is the exponent between whole ether and wei.
const weiDecimals = 18

// ParseEther converts a decimal amount of whole ether into wei by shifting
// 18 decimal places and truncating toward zero. Negative amounts and
// non-numeric strings are rejected.
func ParseEther(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid ether amount %q", amount)
	}

	if d.IsNegative() {
		return nil, errors.Errorf("negative ether amount %q", amount)
	}

	return d.Shift(weiDecimals).Truncate(0).BigInt(), nil
}

// ParseWei parses a non-negative integer wei amount from its decimal string
// form (kept as a string at the boundary to avoid precision loss).
func ParseWei(amount string) (*big.Int, error) {
	const base10 = 10

	v, ok := new(big.Int).SetString(amount, base10)
	if !ok {
		return nil, errors.Errorf("invalid wei amount %q", amount)
	}

	if v.Sign() < 0 {
		return nil, errors.Errorf("negative wei amount %q", amount)
	}

	return v, nil
}
