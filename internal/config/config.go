package config

import (
	"os"
	"strconv"

	"finstat/domain/stats"
	"finstat/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete library configuration
type Config struct {
	Bootstrap  BootstrapConfig
	Comparison ComparisonConfig
	Logging    LoggingConfig
}

// BootstrapConfig holds confidence interval defaults
type BootstrapConfig struct {
	Samples         int
	Method          stats.Method
	BaseSeed        int64
	LowerPercentile float64
	UpperPercentile float64
}

// ComparisonConfig holds predictive accuracy test settings
type ComparisonConfig struct {
	MaxLags int
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// Default returns the built-in configuration without reading the environment
func Default() *Config {
	return &Config{
		Bootstrap: BootstrapConfig{
			Samples:         10000,
			Method:          stats.MethodStationary,
			BaseSeed:        2021,
			LowerPercentile: 2.5,
			UpperPercentile: 97.5,
		},
		Comparison: ComparisonConfig{
			MaxLags: 1,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// Load reads an optional .env file, then environment variables, and validates the result
func Load(envFiles ...string) (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load(envFiles...)

	config := Default()

	bootstrapConfig, err := loadBootstrapConfig(config.Bootstrap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bootstrap configuration")
	}
	config.Bootstrap = *bootstrapConfig

	config.Comparison = ComparisonConfig{
		MaxLags: getEnvIntOrDefault("HAC_MAX_LAGS", config.Comparison.MaxLags),
	}
	config.Logging = LoggingConfig{
		Level: getEnvOrDefault("LOG_LEVEL", config.Logging.Level),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadBootstrapConfig(defaults BootstrapConfig) (*BootstrapConfig, error) {
	method := defaults.Method
	if name := os.Getenv("BOOTSTRAP_METHOD"); name != "" {
		parsed, err := stats.ParseMethod(name)
		if err != nil {
			return nil, errors.WithCode(errors.CodeConfigInvalid, err)
		}
		method = parsed
	}

	return &BootstrapConfig{
		Samples:         getEnvIntOrDefault("BOOTSTRAP_SAMPLES", defaults.Samples),
		Method:          method,
		BaseSeed:        getEnvInt64OrDefault("BOOTSTRAP_SEED", defaults.BaseSeed),
		LowerPercentile: getEnvFloatOrDefault("CI_LOWER_PERCENTILE", defaults.LowerPercentile),
		UpperPercentile: getEnvFloatOrDefault("CI_UPPER_PERCENTILE", defaults.UpperPercentile),
	}, nil
}

// Validate checks ranges of every setting
func (c *Config) Validate() error {
	if c.Bootstrap.Samples < 1 {
		return errors.ConfigInvalid("BOOTSTRAP_SAMPLES must be at least 1")
	}
	if !c.Bootstrap.Method.Valid() {
		return errors.ConfigInvalid("BOOTSTRAP_METHOD must be one of stationary, circular, iid")
	}
	lo, hi := c.Bootstrap.LowerPercentile, c.Bootstrap.UpperPercentile
	if lo < 0 || hi > 100 || lo >= hi {
		return errors.ConfigInvalid("CI percentiles must satisfy 0 <= lower < upper <= 100")
	}
	if c.Comparison.MaxLags < 0 {
		return errors.ConfigInvalid("HAC_MAX_LAGS must be non-negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
