// Package codec converts Money to and from its text and JSON forms.
//
// The text form is "<amount> <code>" with ";<namespace>" appended to the code
// outside ISO-4217, e.g. "10.00 EUR" or "3.5 XYZ;CUSTOM". Decoding resolves the
// currency against a registry, so a code that is not registered fails with
// domain.ErrNotFound.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"currency-registry/domain"
	"currency-registry/shared"
)

var ErrMalformedMoney = domain.NewDomainError("malformed money")

// Resolver finds a currency definition. *registry.Registry satisfies it.
type Resolver interface {
	Lookup(code string, ns shared.Namespace) (domain.Currency, error)
}

// Codec decodes money against a resolver, rounding with a fixed mode.
type Codec struct {
	resolver Resolver
	mode     domain.RoundingMode
}

func New(r Resolver, mode domain.RoundingMode) *Codec {
	return &Codec{resolver: r, mode: mode}
}

// Format renders m in the text form.
func Format(m domain.Money) string {
	return m.StringFixed() + " " + m.Currency().String()
}

// SplitRef splits "CODE[;NAMESPACE]" into its parts. A missing namespace is
// ISO-4217.
func SplitRef(ref string) (string, shared.Namespace, error) {
	code, ns, found := strings.Cut(strings.TrimSpace(ref), shared.RefSeparator)
	code = strings.TrimSpace(code)
	ns = strings.TrimSpace(ns)
	if code == "" || (found && ns == "") {
		return "", "", fmt.Errorf("%w: currency reference %q", ErrMalformedMoney, ref)
	}
	if !found {
		return code, shared.DefaultNamespace, nil
	}
	return code, shared.Namespace(ns), nil
}

// Currency resolves a "CODE[;NAMESPACE]" reference.
func (c *Codec) Currency(ref string) (domain.Currency, error) {
	code, ns, err := SplitRef(ref)
	if err != nil {
		return domain.Currency{}, err
	}
	return c.resolver.Lookup(code, ns)
}

// Parse reads the text form produced by Format.
func (c *Codec) Parse(s string) (domain.Money, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return domain.Money{}, fmt.Errorf("%w: %q is not \"<amount> <currency>\"", ErrMalformedMoney, s)
	}
	return c.decode(fields[0], fields[1])
}

func (c *Codec) decode(amount, ref string) (domain.Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: amount %q: %v", ErrMalformedMoney, amount, err)
	}
	cur, err := c.Currency(ref)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoneyWithMode(d, cur, c.mode), nil
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Marshal renders m as {"amount":"10.00","currency":"EUR"}.
func Marshal(m domain.Money) ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.StringFixed(),
		Currency: m.Currency().String(),
	})
}

// Unmarshal reads the JSON form produced by Marshal.
func (c *Codec) Unmarshal(data []byte) (domain.Money, error) {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Money{}, fmt.Errorf("%w: %v", ErrMalformedMoney, err)
	}
	if raw.Amount == "" || raw.Currency == "" {
		return domain.Money{}, fmt.Errorf("%w: amount and currency are required", ErrMalformedMoney)
	}
	return c.decode(raw.Amount, raw.Currency)
}
