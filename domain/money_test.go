package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-registry/domain"
	"currency-registry/shared"
)

func TestNewMoney_RoundsOnConstruction(t *testing.T) {
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	jpy := newCurrency(t, "JPY", shared.ISO4217, domain.MustFixed(0))
	mru := newCurrency(t, "MRU", shared.ISO4217, domain.FifthSubunit)

	tests := []struct {
		name   string
		amount string
		cur    domain.Currency
		want   string
	}{
		{"EURMidpoint", "10.005", eur, "10.00 EUR"},
		{"JPYUp", "10.6", jpy, "11 JPY"},
		{"JPYMidpointEven", "10.5", jpy, "10 JPY"},
		{"JPYMidpointOdd", "11.5", jpy, "12 JPY"},
		{"MRUFifth", "1.3", mru, "1.2 MRU"},
		{"MRUExact", "1", mru, "1.0 MRU"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := domain.NewMoney(dec(tc.amount), tc.cur)
			if m.String() != tc.want {
				t.Errorf("NewMoney(%s, %s) = %q, want %q", tc.amount, tc.cur, m.String(), tc.want)
			}
		})
	}

	t.Run("WithMode", func(t *testing.T) {
		m := domain.NewMoneyWithMode(dec("10.5"), jpy, domain.HalfAwayFromZero)
		assert.Equal(t, "11", m.StringFixed())
	})

	t.Run("FromString", func(t *testing.T) {
		m, err := domain.MoneyFromString("1.005", eur, domain.TowardPositiveInfinity)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(dec("1.01")))

		_, err = domain.MoneyFromString("abc", eur, domain.HalfEven)
		assert.Error(t, err)
	})

	t.Run("FromInt64AndFloat", func(t *testing.T) {
		assert.Equal(t, "7.00 EUR", domain.MoneyFromInt64(7, eur).String())
		assert.Equal(t, "0.4 MRU", domain.MoneyFromFloat64(0.3, mru, domain.HalfEven).String())
		assert.True(t, domain.Zero(eur).IsZero())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	a := domain.NewMoney(dec("10.25"), eur)
	b := domain.NewMoney(dec("0.75"), eur)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "11.00 EUR", sum.String())

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	assert.Equal(t, "-9.50 EUR", diff.String())
	assert.True(t, diff.IsNegative())
	assert.Equal(t, "9.50 EUR", diff.Abs().String())
	assert.Equal(t, "9.50 EUR", diff.Negate().String())

	assert.Equal(t, "15.38 EUR", a.Multiply(dec("1.5")).String())
	assert.Equal(t, "15.37 EUR", a.MultiplyWithMode(dec("1.5"), domain.TowardZero).String())

	third, err := domain.NewMoney(dec("10"), eur).Divide(dec("3"))
	require.NoError(t, err)
	assert.Equal(t, "3.33 EUR", third.String())

	up, err := domain.NewMoney(dec("10"), eur).DivideWithMode(dec("3"), domain.TowardPositiveInfinity)
	require.NoError(t, err)
	assert.Equal(t, "3.34 EUR", up.String())

	_, err = a.Divide(dec("0"))
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	ratio, err := a.Ratio(b)
	require.NoError(t, err)
	assert.True(t, ratio.Mul(dec("0.75")).Round(10).Equal(dec("10.25")))

	_, err = a.Ratio(domain.Zero(eur))
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestMoney_DivideDirectedModesSeeDeepRemainder(t *testing.T) {
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	one := domain.NewMoney(dec("1.00"), eur)
	// 1 - 10^-33: the quotient exceeds 1 only beyond the 32nd place
	divisor := dec("0." + strings.Repeat("9", 33))

	tests := []struct {
		mode domain.RoundingMode
		want string
	}{
		{domain.TowardPositiveInfinity, "1.01 EUR"},
		{domain.TowardZero, "1.00 EUR"},
		{domain.TowardNegativeInfinity, "1.00 EUR"},
		{domain.HalfEven, "1.00 EUR"},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			got, err := one.DivideWithMode(divisor, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	t.Run("Negative", func(t *testing.T) {
		got, err := one.Negate().DivideWithMode(divisor, domain.TowardNegativeInfinity)
		require.NoError(t, err)
		assert.Equal(t, "-1.01 EUR", got.String())

		got, err = one.DivideWithMode(divisor.Neg(), domain.TowardPositiveInfinity)
		require.NoError(t, err)
		assert.Equal(t, "-1.00 EUR", got.String())
	})

	t.Run("ExactQuotientUntouched", func(t *testing.T) {
		got, err := domain.NewMoney(dec("10"), eur).DivideWithMode(dec("4"), domain.TowardPositiveInfinity)
		require.NoError(t, err)
		assert.Equal(t, "2.50 EUR", got.String())
	})
}

func TestMoney_ZeroValue(t *testing.T) {
	var a, b domain.Money
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))

	t.Run("BinaryOpsRejectMissingCurrency", func(t *testing.T) {
		_, err := a.Add(b)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		_, err = a.Subtract(b)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		_, err = a.Compare(domain.Zero(eur))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		_, err = domain.Zero(eur).Ratio(a)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("ScalingDoesNotPanic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.True(t, a.Multiply(dec("3")).IsZero())
			q, err := a.Divide(dec("3"))
			require.NoError(t, err)
			assert.True(t, q.IsZero())
		})
	})
}

func TestMoney_IncrementDecrement(t *testing.T) {
	mru := newCurrency(t, "MRU", shared.ISO4217, domain.FifthSubunit)
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	xau := newCurrency(t, "XAU", shared.ISO4217, domain.NotApplicable)

	assert.Equal(t, "1.4 MRU", domain.NewMoney(dec("1.2"), mru).Increment().String())
	assert.Equal(t, "1.0 MRU", domain.NewMoney(dec("1.2"), mru).Decrement().String())
	assert.Equal(t, "0.01 EUR", domain.Zero(eur).Increment().String())
	assert.Equal(t, "-0.01 EUR", domain.Zero(eur).Decrement().String())
	assert.Equal(t, "3 XAU", domain.NewMoney(dec("2"), xau).Increment().String())
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	usd := newCurrency(t, "USD", shared.ISO4217, domain.MustFixed(2))
	customEUR := newCurrency(t, "EUR", "CUSTOM", domain.MustFixed(2))

	a := domain.NewMoney(dec("1"), eur)
	for _, other := range []domain.Money{domain.NewMoney(dec("1"), usd), domain.NewMoney(dec("1"), customEUR)} {
		ops := map[string]func() error{
			"Add":                func() error { _, err := a.Add(other); return err },
			"Subtract":           func() error { _, err := a.Subtract(other); return err },
			"Compare":            func() error { _, err := a.Compare(other); return err },
			"GreaterThan":        func() error { _, err := a.GreaterThan(other); return err },
			"GreaterThanOrEqual": func() error { _, err := a.GreaterThanOrEqual(other); return err },
			"LessThan":           func() error { _, err := a.LessThan(other); return err },
			"LessThanOrEqual":    func() error { _, err := a.LessThanOrEqual(other); return err },
			"Ratio":              func() error { _, err := a.Ratio(other); return err },
		}
		for name, op := range ops {
			t.Run(name+"/"+other.Currency().String(), func(t *testing.T) {
				if err := op(); !errors.Is(err, domain.ErrCurrencyMismatch) {
					t.Errorf("expected ErrCurrencyMismatch, got %v", err)
				}
			})
		}
		assert.False(t, a.Equal(other))
	}
}

func TestMoney_Comparison(t *testing.T) {
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	small := domain.NewMoney(dec("1.00"), eur)
	big := domain.NewMoney(dec("2.00"), eur)

	c, err := small.Compare(big)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	lte, err := small.LessThanOrEqual(domain.NewMoney(dec("1"), eur))
	require.NoError(t, err)
	assert.True(t, lte)

	assert.True(t, small.Equal(domain.NewMoney(dec("1.004"), eur)))
}

func TestMoney_Conversions(t *testing.T) {
	eur := newCurrency(t, "EUR", shared.ISO4217, domain.MustFixed(2))
	m := domain.NewMoney(dec("-12.75"), eur)

	assert.True(t, m.Decimal().Equal(dec("-12.75")))
	f, exact := m.Float64()
	assert.Equal(t, -12.75, f)
	assert.True(t, exact)
	assert.Equal(t, int64(-12), m.Int64())
	assert.Equal(t, "-12", m.BigInt().String())
	assert.Equal(t, "-12.75", m.StringFixed())
}
