package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/uyouii/chisquare-gof/common"
	"github.com/uyouii/chisquare-gof/quantile"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	EnvStrategy      = "CHISQ_STRATEGY"
	EnvTolerance     = "CHISQ_TOLERANCE"
	EnvMaxIterations = "CHISQ_MAX_ITERATIONS"
	EnvAlpha         = "CHISQ_ALPHA"
	EnvLogLevel      = "CHISQ_LOG_LEVEL"
)

type Config struct {
	Quantile quantile.Config `yaml:"quantile"`

	// Alpha is the significance level used when the caller gives none.
	Alpha    float64 `yaml:"alpha"`
	LogLevel string  `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Quantile: quantile.DefaultConfig(),
		Alpha:    0.05,
		LogLevel: "info",
	}
}

// Load merges configuration with priority env > file > defaults. An empty path or a
// missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if err := c.Quantile.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !(c.Alpha > 0 && c.Alpha < 1) {
		errs = append(errs, fmt.Errorf("%w: alpha must be in (0,1), got %v", common.ErrorInvalidInput, c.Alpha))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", common.ErrorInvalidInput, err))
	}
	return errors.Join(errs...)
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) error {
	var errs []error
	if v := os.Getenv(EnvStrategy); v != "" {
		cfg.Quantile.Strategy = v
	}
	if v := os.Getenv(EnvTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", EnvTolerance, err))
		} else {
			cfg.Quantile.Tolerance = f
		}
	}
	if v := os.Getenv(EnvMaxIterations); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", EnvMaxIterations, err))
		} else {
			cfg.Quantile.MaxIterations = i
		}
	}
	if v := os.Getenv(EnvAlpha); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", EnvAlpha, err))
		} else {
			cfg.Alpha = f
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return errors.Join(errs...)
}
