package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-registry/codec"
	"currency-registry/config"
)

// freshService swaps in a new service so tests do not share registrations.
func freshService(t *testing.T) {
	t.Helper()
	cfg := config.Default()
	cfg.LogLevel = "error"
	currencyService = newService(cfg, nil)
	moneyCodec = codec.New(currencyService.Registry(), cfg.Rounding())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoundCommand(t *testing.T) {
	freshService(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"round", "10.005", "EUR"}, "10.00 EUR\n"},
		{[]string{"round", "1.3", "MRU"}, "1.2 MRU\n"},
		{[]string{"round", "10.5", "JPY", "--mode", "half-away-from-zero"}, "11 JPY\n"},
		{[]string{"round", "10.5", "JPY"}, "10 JPY\n"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	_, err := run(t, "", "round", "1", "QQQ")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	freshService(t)

	out, err := run(t, "", "parse", "10.005 EUR")
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"10.00","currency":"EUR"}`, out)

	out, err = run(t, "", "parse", "--json", `{"amount":"1.3","currency":"MRU"}`)
	require.NoError(t, err)
	assert.Equal(t, "1.2 MRU\n", out)

	_, err = run(t, "", "parse", "ten EUR")
	assert.Error(t, err)
}

func TestLookupCommand(t *testing.T) {
	freshService(t)

	out, err := run(t, "", "lookup", "MRO")
	require.NoError(t, err)
	assert.Contains(t, out, "Namespace:    ISO-4217-HISTORIC")
	assert.Contains(t, out, "Digits:       1/5")
	assert.Contains(t, out, "Validity:     until 2017-12-31")
	assert.Contains(t, out, "not valid today")

	out, err = run(t, "", "lookup", "EUR", "-n", "ISO-4217")
	require.NoError(t, err)
	assert.Contains(t, out, "Symbol:       €")
}

func TestREPLSession(t *testing.T) {
	freshService(t)

	script := strings.Join([]string{
		`register --code XYZ -n CUSTOM --digits 3 --name "Test unit"`,
		`round 1.23456 XYZ;CUSTOM`,
		`register --code EUR -n CUSTOM`,
		`lookup EUR`,
		`unregister XYZ -n CUSTOM --reason done`,
		`history --skip 1`,
		`namespaces`,
		`repl`,
		`exit`,
	}, "\n")

	out, err := run(t, script, "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Currency 'XYZ' registered in CUSTOM.")
	assert.Contains(t, out, "1.235 XYZ;CUSTOM")
	assert.Contains(t, out, "ambiguous")
	assert.Contains(t, out, "Currency 'XYZ' removed from CUSTOM.")
	assert.Contains(t, out, "Event 2:")
	assert.NotContains(t, out, "Event 1:")
	assert.Contains(t, out, "already in a REPL session")
	assert.Contains(t, out, "Exiting REPL.")
}

func TestSplitArgs(t *testing.T) {
	args, err := splitArgs(`register --name "Test  unit" --code  XYZ`)
	require.NoError(t, err)
	assert.Equal(t, []string{"register", "--name", "Test  unit", "--code", "XYZ"}, args)

	_, err = splitArgs(`register --name "open`)
	assert.Error(t, err)
}
