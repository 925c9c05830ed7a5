package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-registry/config"
	"currency-registry/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, domain.HalfEven, cfg.Rounding())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MONEY_ENVIRONMENT", "development")
	t.Setenv("MONEY_LOG_LEVEL", " DEBUG ")
	t.Setenv("MONEY_ROUNDING_MODE", "Toward-Zero")
	t.Setenv("MONEY_SEED_HISTORIC", "false")
	t.Setenv("MONEY_SNAPSHOT_FREQUENCY", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.TowardZero, cfg.Rounding())
	assert.False(t, cfg.SeedHistoric)
	assert.Equal(t, 5, cfg.SnapshotFrequency)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"Environment":       {"MONEY_ENVIRONMENT", "staging"},
		"LogLevel":          {"MONEY_LOG_LEVEL", "verbose"},
		"RoundingMode":      {"MONEY_ROUNDING_MODE", "banker"},
		"SnapshotFrequency": {"MONEY_SNAPSHOT_FREQUENCY", "0"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := config.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestConfig_RoundingFallback(t *testing.T) {
	cfg := config.Default()
	cfg.RoundingMode = "nonsense"
	assert.Equal(t, domain.HalfEven, cfg.Rounding())
	assert.Error(t, config.Validate(cfg))
}
