package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const divisionPlaces = MaxDecimalDigits + 4

// Money is an amount in a currency. The amount is always rounded to the
// currency's minor unit; unrounded amounts never leave the constructors.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney rounds amount half-to-even for currency.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return NewMoneyWithMode(amount, currency, HalfEven)
}

func NewMoneyWithMode(amount decimal.Decimal, currency Currency, mode RoundingMode) Money {
	return Money{amount: currency.Round(amount, mode), currency: currency}
}

func MoneyFromString(amount string, currency Currency, mode RoundingMode) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return NewMoneyWithMode(d, currency, mode), nil
}

func MoneyFromInt64(amount int64, currency Currency) Money {
	return NewMoney(decimal.NewFromInt(amount), currency)
}

func MoneyFromFloat64(amount float64, currency Currency, mode RoundingMode) Money {
	return NewMoneyWithMode(decimal.NewFromFloat(amount), currency, mode)
}

// Zero returns a zero amount in currency.
func Zero(currency Currency) Money {
	return NewMoney(decimal.Zero, currency)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) sameCurrency(op string, other Money) error {
	if m.currency.IsZero() || other.currency.IsZero() {
		return fmt.Errorf("%w: cannot %s money without a currency", ErrInvalidArgument, op)
	}
	if !m.currency.Equal(other.currency) {
		return fmt.Errorf("%w: cannot %s %s and %s", ErrCurrencyMismatch, op, m.currency, other.currency)
	}
	return nil
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency("add", other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency), nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency("subtract", other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency), nil
}

// Multiply scales the amount by factor and re-rounds half-to-even.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return m.MultiplyWithMode(factor, HalfEven)
}

func (m Money) MultiplyWithMode(factor decimal.Decimal, mode RoundingMode) Money {
	return NewMoneyWithMode(m.amount.Mul(factor), m.currency, mode)
}

// Divide scales the amount by 1/divisor and re-rounds half-to-even.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	return m.DivideWithMode(divisor, HalfEven)
}

func (m Money) DivideWithMode(divisor decimal.Decimal, mode RoundingMode) (Money, error) {
	if divisor.IsZero() {
		return Money{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, m)
	}
	// Truncate well past the widest rule. A non-zero remainder becomes a sticky
	// digit one place further so directed modes still see the discarded tail;
	// every rounding boundary lies on the truncation grid, so nothing else moves.
	q, r := m.amount.QuoRem(divisor, divisionPlaces)
	if !r.IsZero() {
		sticky := decimal.New(int64(m.amount.Sign()*divisor.Sign()), -(divisionPlaces + 1))
		q = q.Add(sticky)
	}
	return NewMoneyWithMode(q, m.currency, mode), nil
}

// Ratio divides two amounts of the same currency.
func (m Money) Ratio(other Money) (decimal.Decimal, error) {
	if err := m.sameCurrency("divide", other); err != nil {
		return decimal.Zero, err
	}
	if other.amount.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, m, other)
	}
	return m.amount.Div(other.amount), nil
}

// Increment adds one minor unit.
func (m Money) Increment() Money {
	return Money{amount: m.amount.Add(m.currency.digits.MinorUnit()), currency: m.currency}
}

// Decrement subtracts one minor unit.
func (m Money) Decrement() Money {
	return Money{amount: m.amount.Sub(m.currency.digits.MinorUnit()), currency: m.currency}
}

func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Compare returns -1, 0 or +1 like decimal.Cmp.
func (m Money) Compare(other Money) (int, error) {
	if err := m.sameCurrency("compare", other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// Equal reports whether both the currency and the amount match. Unlike the
// ordering methods it does not fail on different currencies.
func (m Money) Equal(other Money) bool {
	return m.currency.Equal(other.currency) && m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c >= 0, err
}

func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

func (m Money) LessThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c <= 0, err
}

// Decimal returns the rounded amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the nearest float64 and whether it is exact.
func (m Money) Float64() (float64, bool) {
	return m.amount.Float64()
}

// Int64 returns the whole-unit part of the amount, truncated toward zero.
func (m Money) Int64() int64 {
	return m.amount.IntPart()
}

// BigInt returns the whole-unit part of the amount, truncated toward zero.
func (m Money) BigInt() *big.Int {
	return m.amount.BigInt()
}

// StringFixed prints the amount with the currency's fractional places.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(m.currency.digits.Places())
}

func (m Money) String() string {
	return m.StringFixed() + " " + m.currency.code
}
