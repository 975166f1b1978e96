package quantile

import (
	"fmt"
	"math"

	"github.com/uyouii/chisquare-gof/common"
)

// Provider returns the critical value c with P(X <= c) = 1 - alpha for X ~ chi2(dof).
type Provider interface {
	CriticalValue(alpha float64, dof int) (float64, error)
}

type Config struct {
	// Strategy is StrategyInverseCDF or StrategyTable, empty means StrategyInverseCDF.
	Strategy string `yaml:"strategy" json:"strategy"`

	// Relative tolerance and iteration cap of the inverse cdf root finder.
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:      StrategyInverseCDF,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func (c Config) Validate() error {
	switch c.Strategy {
	case "", StrategyInverseCDF, StrategyTable:
	default:
		return fmt.Errorf("%w: unknown quantile strategy %q", common.ErrorInvalidInput, c.Strategy)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return fmt.Errorf("%w: tolerance must not be negative, got %v", common.ErrorInvalidInput, c.Tolerance)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must not be negative, got %v",
			common.ErrorInvalidInput, c.MaxIterations)
	}
	return nil
}

// NewProvider selects the quantile strategy named by cfg.
func NewProvider(cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Strategy == StrategyTable {
		return NewTableProvider(), nil
	}
	return NewInverseCDFProvider(cfg.Tolerance, cfg.MaxIterations), nil
}

func checkArgs(alpha float64, dof int) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("%w: alpha must be in (0,1), got %v", common.ErrorInvalidInput, alpha)
	}
	if dof < 1 {
		return fmt.Errorf("%w: degrees of freedom must be at least 1, got %v", common.ErrorInvalidInput, dof)
	}
	return nil
}
