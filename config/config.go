// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"currency-registry/domain"
)

// EnvPrefix is prepended to every variable name, e.g. MONEY_LOG_LEVEL.
const EnvPrefix = "MONEY"

// Config is read from MONEY_* environment variables, optionally seeded by a
// .env file in the working directory.
type Config struct {
	Environment       string `mapstructure:"environment" validate:"required,oneof=development production"`
	LogLevel          string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error"`
	RoundingMode      string `mapstructure:"rounding_mode" validate:"required,oneof=half-even half-away-from-zero toward-zero toward-positive-infinity toward-negative-infinity"`
	SeedHistoric      bool   `mapstructure:"seed_historic"`
	SnapshotFrequency int    `mapstructure:"snapshot_frequency" validate:"min=1,max=100000"`
}

var configValidator = validator.New()

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.RoundingMode = strings.ToLower(strings.TrimSpace(cfg.RoundingMode))

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Environment:       "production",
		LogLevel:          "info",
		RoundingMode:      domain.HalfEven.String(),
		SeedHistoric:      true,
		SnapshotFrequency: 100,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("environment", d.Environment)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("rounding_mode", d.RoundingMode)
	v.SetDefault("seed_historic", d.SeedHistoric)
	v.SetDefault("snapshot_frequency", d.SnapshotFrequency)
}

// Validate checks struct tags.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Rounding is the configured default rounding mode.
func (c *Config) Rounding() domain.RoundingMode {
	mode, err := domain.ParseRoundingMode(c.RoundingMode)
	if err != nil {
		return domain.HalfEven
	}
	return mode
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
