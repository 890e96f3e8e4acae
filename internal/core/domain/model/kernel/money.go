package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when callers have no better choice.
// The rental service operates in Colombia, so amounts default to Colombian pesos.
const DefaultCurrency = "COP"

const currencyCodeLength = 3

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or Zero.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or Zero constructors")

// ErrCurrencyMismatch is returned when arithmetic mixes two currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money represents a non-negative monetary amount in a single currency.
// It is an immutable value object: every arithmetic operation returns a new
// instance and enforces that the result stays non-negative and that both
// operands share the same currency.
//
// Example:
//
//	rate, err := kernel.NewMoney(decimal.NewFromInt(2000), "COP")
//	if err != nil {
//	    // handle validation error
//	}
//	total, err := rate.Multiply(decimal.NewFromInt(2)) // 4000 COP
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be non-negative and the
// currency a 3-letter code (normalized to upper case).
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Zero creates a zero amount in the given currency.
func Zero(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureComparable(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two amounts in the same currency.
// A negative result is a validation error, not a representable value.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureComparable(other); err != nil {
		return Money{}, err
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("subtraction result cannot be negative"))
	}

	return NewMoney(result, m.currency)
}

// Multiply scales the amount by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			errors.New("factor cannot be negative"))
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// Divide splits the amount by a strictly positive divisor.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if !divisor.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("divisor",
			errors.New("divisor must be positive"))
	}

	return NewMoney(m.amount.Div(divisor), m.currency)
}

// IsGreaterThan reports whether m exceeds other. Both operands must share a
// currency.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.ensureComparable(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// IsLessThan reports whether m is below other. Both operands must share a
// currency.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := m.ensureComparable(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// IsEqual compares two amounts structurally.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String implements fmt.Stringer, e.g. "4000 COP".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

func (m Money) ensureComparable(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency))
	}
	return nil
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("amount cannot be negative"))
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != currencyCodeLength {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter currency code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a 3-letter currency code", currency))
		}
	}

	m.currency = currency
	return nil
}
