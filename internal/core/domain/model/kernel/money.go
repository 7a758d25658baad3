package kernel

import (
	"fmt"

	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromString")

// maxMoneyScale is the number of decimal places a monetary amount may carry.
// Amounts are captured at order-creation time with currency precision of two
// decimal places.
const maxMoneyScale = 2

// Money is a value object representing a positive monetary amount with fixed
// precision. It wraps github.com/shopspring/decimal to keep arithmetic exact:
// binary floating point is never used, so totals do not drift across currency
// amounts.
//
// The zero value of Money is invalid and must be constructed via NewMoney or
// MoneyFromString. Money is immutable.
//
// Example:
//
//	price, err := kernel.MoneyFromString("49999.99")
//	if err != nil {
//	    // handle validation error
//	}
//	subtotal := price.Mul(2) // 99999.98, exact
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be strictly positive and carry at most two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	if amount.Exponent() < -maxMoneyScale {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount, maxMoneyScale),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "500.00" into a Money value.
// Returns an error if the string is not a valid decimal or fails the
// NewMoney validation rules.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Mul multiplies the amount by an integer quantity, exactly.
func (m Money) Mul(quantity int) decimal.Decimal {
	return m.amount.Mul(decimal.NewFromInt(int64(quantity)))
}

// IsEqual compares two Money values by numeric amount.
// "500" and "500.00" compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(maxMoneyScale)
}
