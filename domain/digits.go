package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DigitsKind tells how a currency's major unit is subdivided.
type DigitsKind uint8

const (
	digitsUnset DigitsKind = iota
	// DigitsFixed is a power-of-ten subdivision with a fixed number of fractional digits.
	DigitsFixed
	// DigitsNotApplicable marks units without a meaningful subdivision, such as bullion.
	DigitsNotApplicable
	// DigitsFifthSubunit marks currencies divided into five parts.
	DigitsFifthSubunit
)

// MaxDecimalDigits is the largest fixed digit count a currency may declare.
const MaxDecimalDigits = 28

// Legacy float encodings of the two non-decimal kinds.
const (
	notApplicableValue = -1.0
	fifthSubunitValue  = 0.69897000433601880478626110527551 // log10(5)
)

// Digits is the minor unit rule of a currency. The zero value is invalid and is
// rejected by NewCurrency.
type Digits struct {
	kind DigitsKind
	n    uint8
}

var (
	NotApplicable = Digits{kind: DigitsNotApplicable}
	FifthSubunit  = Digits{kind: DigitsFifthSubunit}
)

var (
	fifth = decimal.New(2, -1)
	five  = decimal.NewFromInt(5)
)

// Fixed returns a power-of-ten rule with n fractional digits.
func Fixed(n int) (Digits, error) {
	if n < 0 || n > MaxDecimalDigits {
		return Digits{}, fmt.Errorf("%w: %d is not in [0,%d]", ErrInvalidDecimalDigits, n, MaxDecimalDigits)
	}
	return Digits{kind: DigitsFixed, n: uint8(n)}, nil
}

// MustFixed is like Fixed but panics on an out-of-range count.
func MustFixed(n int) Digits {
	d, err := Fixed(n)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDigits accepts the legacy float encoding: a whole number in [0,28], -1 for
// not applicable, or log10(5) for fifth subunits.
func ParseDigits(v float64) (Digits, error) {
	switch {
	case v == notApplicableValue:
		return NotApplicable, nil
	case math.Abs(v-fifthSubunitValue) < 1e-9:
		return FifthSubunit, nil
	case v == math.Trunc(v):
		return Fixed(int(v))
	}
	return Digits{}, fmt.Errorf("%w: %v", ErrInvalidDecimalDigits, v)
}

func (d Digits) Kind() DigitsKind {
	return d.kind
}

func (d Digits) IsSet() bool {
	return d.kind != digitsUnset
}

// Count returns the fixed digit count and whether the rule is a fixed one.
func (d Digits) Count() (int, bool) {
	return int(d.n), d.kind == DigitsFixed
}

// Float64 returns the legacy numeric encoding of the rule.
func (d Digits) Float64() float64 {
	switch d.kind {
	case DigitsNotApplicable:
		return notApplicableValue
	case DigitsFifthSubunit:
		return fifthSubunitValue
	default:
		return float64(d.n)
	}
}

// Places is the number of fractional digits needed to print a rounded amount.
func (d Digits) Places() int32 {
	switch d.kind {
	case DigitsFifthSubunit:
		return 1
	case DigitsFixed:
		return int32(d.n)
	default:
		return 0
	}
}

// MinorUnit is the smallest amount representable under the rule.
func (d Digits) MinorUnit() decimal.Decimal {
	switch d.kind {
	case DigitsFifthSubunit:
		return fifth
	case DigitsFixed:
		return decimal.New(1, -int32(d.n))
	default:
		return decimal.NewFromInt(1)
	}
}

func (d Digits) String() string {
	switch d.kind {
	case DigitsNotApplicable:
		return "N.A."
	case DigitsFifthSubunit:
		return "1/5"
	case DigitsFixed:
		return strconv.Itoa(int(d.n))
	default:
		return "unset"
	}
}

func (d Digits) MarshalText() ([]byte, error) {
	if !d.IsSet() {
		return nil, fmt.Errorf("%w: digits not set", ErrInvalidDecimalDigits)
	}
	return []byte(d.String()), nil
}

func (d *Digits) UnmarshalText(text []byte) error {
	parsed, err := ParseDigitsText(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDigitsText reads the text form produced by Digits.String.
func ParseDigitsText(s string) (Digits, error) {
	switch s {
	case "N.A.", "NA", "n/a":
		return NotApplicable, nil
	case "1/5", "fifth":
		return FifthSubunit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Digits{}, fmt.Errorf("%w: %q", ErrInvalidDecimalDigits, s)
	}
	return Fixed(n)
}
