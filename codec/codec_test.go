package codec_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-registry/codec"
	"currency-registry/domain"
	"currency-registry/registry"
	"currency-registry/shared"
)

func newCodec(t *testing.T, mode domain.RoundingMode) (*codec.Codec, *registry.Registry) {
	t.Helper()
	reg := registry.NewISO4217()
	xyz, err := domain.NewCurrency(domain.CurrencyParams{Code: "XYZ", Namespace: "CUSTOM", Digits: domain.MustFixed(1)})
	require.NoError(t, err)
	require.NoError(t, reg.Register(xyz))
	return codec.New(reg, mode), reg
}

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref      string
		wantCode string
		wantNS   shared.Namespace
		wantErr  bool
	}{
		{"EUR", "EUR", shared.ISO4217, false},
		{" EUR ", "EUR", shared.ISO4217, false},
		{"XYZ;CUSTOM", "XYZ", "CUSTOM", false},
		{"MRO;ISO-4217-HISTORIC", "MRO", shared.ISO4217Historic, false},
		{"", "", "", true},
		{";CUSTOM", "", "", true},
		{"XYZ;", "", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			code, ns, err := codec.SplitRef(tc.ref)
			if tc.wantErr {
				assert.ErrorIs(t, err, codec.ErrMalformedMoney)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantNS, ns)
		})
	}
}

func TestCodec_FormatParse(t *testing.T) {
	c, reg := newCodec(t, domain.HalfEven)

	t.Run("Format", func(t *testing.T) {
		eur := reg.MustLookup("EUR", shared.ISO4217)
		assert.Equal(t, "10.00 EUR", codec.Format(domain.NewMoney(decimal.NewFromInt(10), eur)))

		xyz := reg.MustLookup("XYZ", "CUSTOM")
		assert.Equal(t, "3.5 XYZ;CUSTOM", codec.Format(domain.NewMoney(decimal.RequireFromString("3.46"), xyz)))
	})

	t.Run("ParseRoundTrip", func(t *testing.T) {
		for _, s := range []string{"10.00 EUR", "-0.25 EUR", "3.5 XYZ;CUSTOM", "1.2 MRU", "100 JPY", "7.0 MRO;ISO-4217-HISTORIC"} {
			m, err := c.Parse(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, codec.Format(m))
		}
	})

	t.Run("ParseRounds", func(t *testing.T) {
		m, err := c.Parse("10.005 EUR")
		require.NoError(t, err)
		assert.Equal(t, "10.00 EUR", codec.Format(m))

		up := codec.New(reg, domain.TowardPositiveInfinity)
		m, err = up.Parse("10.001 EUR")
		require.NoError(t, err)
		assert.Equal(t, "10.01 EUR", codec.Format(m))
	})

	t.Run("ParseErrors", func(t *testing.T) {
		for _, s := range []string{"", "10.00", "10.00 EUR extra", "ten EUR", "1 ;CUSTOM"} {
			_, err := c.Parse(s)
			assert.ErrorIs(t, err, codec.ErrMalformedMoney, s)
		}
		_, err := c.Parse("1.00 QQQ")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = c.Parse("1.00 XYZ")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCodec_CustomNamespaceRoundTrip(t *testing.T) {
	reg := registry.New()
	c := codec.New(reg, domain.HalfEven)
	defs := []domain.CurrencyParams{
		{Code: "XYZ", Namespace: "GAME-1", Digits: domain.MustFixed(2)},
		{Code: "GEMS", Namespace: "GAME-1", Digits: domain.NotApplicable},
		{Code: "QTR", Namespace: "ARCADE_2", Digits: domain.FifthSubunit},
	}
	for _, p := range defs {
		cur, err := domain.NewCurrency(p)
		require.NoError(t, err)
		require.NoError(t, reg.Register(cur))

		m := domain.NewMoney(decimal.RequireFromString("1.5"), cur)
		text := codec.Format(m)
		back, err := c.Parse(text)
		require.NoError(t, err, text)
		assert.True(t, back.Equal(m), text)

		data, err := codec.Marshal(m)
		require.NoError(t, err)
		back, err = c.Unmarshal(data)
		require.NoError(t, err, string(data))
		assert.True(t, back.Equal(m), string(data))
	}

	t.Run("UnformattableDefinitionsAreRejected", func(t *testing.T) {
		for _, p := range []domain.CurrencyParams{
			{Code: "XYZ", Namespace: "MY GAME", Digits: domain.MustFixed(2)},
			{Code: "A;B", Namespace: "CUSTOM", Digits: domain.MustFixed(2)},
		} {
			_, err := domain.NewCurrency(p)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		}
		assert.Equal(t, 3, reg.Len())
	})
}

func TestCodec_JSON(t *testing.T) {
	c, reg := newCodec(t, domain.HalfEven)
	xyz := reg.MustLookup("XYZ", "CUSTOM")

	data, err := codec.Marshal(domain.NewMoney(decimal.RequireFromString("2"), xyz))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"2.0","currency":"XYZ;CUSTOM"}`, string(data))

	back, err := c.Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, back.Equal(domain.NewMoney(decimal.NewFromInt(2), xyz)))

	t.Run("Errors", func(t *testing.T) {
		for _, raw := range []string{`{`, `{"amount":"1"}`, `{"currency":"EUR"}`, `{"amount":"x","currency":"EUR"}`} {
			_, err := c.Unmarshal([]byte(raw))
			assert.ErrorIs(t, err, codec.ErrMalformedMoney, raw)
		}
		_, err := c.Unmarshal([]byte(`{"amount":"1","currency":"QQQ"}`))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
