package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"currency-registry/shared"
)

const dateLayout = "2006-01-02"

// Currency is an immutable currency definition. Build it with NewCurrency.
type Currency struct {
	code        string
	numericCode string
	digits      Digits
	englishName string
	symbol      string
	namespace   shared.Namespace
	validFrom   time.Time
	validTo     time.Time
}

// CurrencyParams holds the inputs to NewCurrency. Zero ValidFrom/ValidTo leave
// the validity window open on that side.
type CurrencyParams struct {
	Code        string
	NumericCode string
	Digits      Digits
	EnglishName string
	Symbol      string
	Namespace   shared.Namespace
	ValidFrom   time.Time
	ValidTo     time.Time
}

// NewCurrency validates p and returns the definition. Namespace defaults to
// ISO-4217 and Symbol to the generic currency sign.
func NewCurrency(p CurrencyParams) (Currency, error) {
	code := strings.TrimSpace(p.Code)
	if err := checkKeyPart("code", code); err != nil {
		return Currency{}, err
	}
	ns := shared.Namespace(strings.TrimSpace(string(p.Namespace)))
	if ns == "" {
		ns = shared.DefaultNamespace
	}
	if err := checkKeyPart("namespace", string(ns)); err != nil {
		return Currency{}, err
	}
	if !p.Digits.IsSet() {
		return Currency{}, fmt.Errorf("%w: currency %s has no minor unit rule", ErrInvalidDecimalDigits, code)
	}

	from, to := day(p.ValidFrom), day(p.ValidTo)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return Currency{}, fmt.Errorf("%w: %s valid from %s after valid to %s",
			ErrInvalidValidity, code, from.Format(dateLayout), to.Format(dateLayout))
	}

	symbol := p.Symbol
	if symbol == "" {
		symbol = shared.DefaultSymbol
	}

	return Currency{
		code:        code,
		numericCode: strings.TrimSpace(p.NumericCode),
		digits:      p.Digits,
		englishName: p.EnglishName,
		symbol:      symbol,
		namespace:   ns,
		validFrom:   from,
		validTo:     to,
	}, nil
}

// MustCurrency is like NewCurrency but panics on invalid input.
func MustCurrency(p CurrencyParams) Currency {
	c, err := NewCurrency(p)
	if err != nil {
		panic(err)
	}
	return c
}

func checkKeyPart(what, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, what)
	}
	for _, sep := range []string{shared.KeySeparator, shared.RefSeparator} {
		if strings.Contains(v, sep) {
			return fmt.Errorf("%w: %s %q contains %q", ErrInvalidArgument, what, v, sep)
		}
	}
	// the text form is split on whitespace
	if strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %s %q contains whitespace", ErrInvalidArgument, what, v)
	}
	return nil
}

// day truncates t to its calendar date. The zero time stays zero.
func day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c Currency) Code() string                { return c.code }
func (c Currency) NumericCode() string         { return c.numericCode }
func (c Currency) Digits() Digits              { return c.digits }
func (c Currency) EnglishName() string         { return c.englishName }
func (c Currency) Symbol() string              { return c.symbol }
func (c Currency) Namespace() shared.Namespace { return c.namespace }

// ValidFrom returns the first day of validity and whether it is bounded.
func (c Currency) ValidFrom() (time.Time, bool) { return c.validFrom, !c.validFrom.IsZero() }

// ValidTo returns the last day of validity and whether it is bounded.
func (c Currency) ValidTo() (time.Time, bool) { return c.validTo, !c.validTo.IsZero() }

// IsZero reports whether c is the zero Currency rather than a built definition.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// IsValidOn reports whether the calendar day of t falls inside the validity window.
func (c Currency) IsValidOn(t time.Time) bool {
	d := day(t)
	if !c.validFrom.IsZero() && d.Before(c.validFrom) {
		return false
	}
	if !c.validTo.IsZero() && d.After(c.validTo) {
		return false
	}
	return true
}

// IsValid is IsValidOn for today.
func (c Currency) IsValid() bool {
	return c.IsValidOn(time.Now())
}

// Equal compares every field of the definitions, not only the code.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code &&
		c.namespace == other.namespace &&
		c.numericCode == other.numericCode &&
		c.digits == other.digits &&
		c.englishName == other.englishName &&
		c.symbol == other.symbol &&
		c.validFrom.Equal(other.validFrom) &&
		c.validTo.Equal(other.validTo)
}

// Round rounds amount to this currency's minor unit. The zero Currency has no
// rule and returns amount unchanged.
func (c Currency) Round(amount decimal.Decimal, mode RoundingMode) decimal.Decimal {
	if !c.digits.IsSet() {
		return amount
	}
	return Round(amount, c.digits, mode)
}

// String is the code, followed by ";namespace" outside the default namespace.
func (c Currency) String() string {
	if c.namespace == shared.DefaultNamespace {
		return c.code
	}
	return c.code + shared.RefSeparator + string(c.namespace)
}

// Key is the registry key of the definition.
func (c Currency) Key() string {
	return shared.Key(c.namespace, c.code)
}

// Record flattens the definition into its serializable form.
func (c Currency) Record() shared.CurrencyRecord {
	r := shared.CurrencyRecord{
		Code:        c.code,
		NumericCode: c.numericCode,
		Digits:      c.digits.String(),
		EnglishName: c.englishName,
		Symbol:      c.symbol,
		Namespace:   c.namespace,
	}
	if !c.validFrom.IsZero() {
		r.ValidFrom = c.validFrom.Format(dateLayout)
	}
	if !c.validTo.IsZero() {
		r.ValidTo = c.validTo.Format(dateLayout)
	}
	return r
}

// CurrencyFromRecord rebuilds and revalidates a definition from its record.
func CurrencyFromRecord(r shared.CurrencyRecord) (Currency, error) {
	digits, err := ParseDigitsText(r.Digits)
	if err != nil {
		return Currency{}, fmt.Errorf("currency %s: %w", r.Code, err)
	}
	p := CurrencyParams{
		Code:        r.Code,
		NumericCode: r.NumericCode,
		Digits:      digits,
		EnglishName: r.EnglishName,
		Symbol:      r.Symbol,
		Namespace:   r.Namespace,
	}
	if r.ValidFrom != "" {
		if p.ValidFrom, err = time.Parse(dateLayout, r.ValidFrom); err != nil {
			return Currency{}, fmt.Errorf("currency %s validFrom: %w", r.Code, err)
		}
	}
	if r.ValidTo != "" {
		if p.ValidTo, err = time.Parse(dateLayout, r.ValidTo); err != nil {
			return Currency{}, fmt.Errorf("currency %s validTo: %w", r.Code, err)
		}
	}
	return NewCurrency(p)
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Record())
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var r shared.CurrencyRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	parsed, err := CurrencyFromRecord(r)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
