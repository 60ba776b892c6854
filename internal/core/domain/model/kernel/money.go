package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// minor currency units (Colombian peso centavos). Order totals, expected COD
// amounts, collected amounts and cash ledger entries are all expressed as
// Money.
//
// Amounts are integers to keep ledger summation exact; there is no floating
// point anywhere in the cash path. The zero value represents zero pesos and
// is valid, so Money can be embedded without a constructor guard.
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual reports whether both values carry the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of both amounts. The result may be negative;
// callers that require non-negativity must check it themselves (the derived
// messenger balance asserts this as an invariant).
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

// String formats the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
