package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how midpoints and discarded digits are handled. The zero
// value is HalfEven.
type RoundingMode int

const (
	// HalfEven rounds midpoints to the even neighbour (banker's rounding).
	HalfEven RoundingMode = iota
	HalfAwayFromZero
	TowardZero
	TowardPositiveInfinity
	TowardNegativeInfinity
)

var roundingModeNames = map[RoundingMode]string{
	HalfEven:               "half-even",
	HalfAwayFromZero:       "half-away-from-zero",
	TowardZero:             "toward-zero",
	TowardPositiveInfinity: "toward-positive-infinity",
	TowardNegativeInfinity: "toward-negative-infinity",
}

func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode maps a mode name, as printed by String, back to the mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range roundingModeNames {
		if name == s {
			return mode, nil
		}
	}
	return HalfEven, fmt.Errorf("%w: %q", ErrInvalidRoundingMode, s)
}

// Round brings amount onto the grid of the given minor unit rule.
//
// Not-applicable units round to whole units, fifth subunits to the nearest
// multiple of 0.2 and fixed rules to their digit count.
func Round(amount decimal.Decimal, digits Digits, mode RoundingMode) decimal.Decimal {
	switch digits.Kind() {
	case DigitsNotApplicable:
		return roundPlaces(amount, 0, mode)
	case DigitsFifthSubunit:
		return roundPlaces(amount.Mul(five), 0, mode).Mul(fifth)
	case DigitsFixed:
		return roundPlaces(amount, int32(digits.n), mode)
	default:
		panic("domain: rounding with unset digits")
	}
}

func roundPlaces(d decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case HalfAwayFromZero:
		return d.Round(places)
	case TowardZero:
		return d.RoundDown(places)
	case TowardPositiveInfinity:
		return d.RoundCeil(places)
	case TowardNegativeInfinity:
		return d.RoundFloor(places)
	default:
		return d.RoundBank(places)
	}
}
