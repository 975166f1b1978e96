package gof

import (
	"fmt"
	"math"

	"github.com/uyouii/chisquare-gof/common"
	"github.com/uyouii/chisquare-gof/model"
	"github.com/uyouii/chisquare-gof/quantile"
)

// Evaluator runs the chi-square goodness-of-fit test against critical values from a
// quantile.Provider. It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	provider quantile.Provider
}

func NewEvaluator(provider quantile.Provider) *Evaluator {
	return &Evaluator{
		provider: provider,
	}
}

// Evaluate tests sample at significance level alpha.
func (e *Evaluator) Evaluate(sample model.Sample, alpha float64) (model.TestResult, error) {
	if err := checkSample(sample, alpha); err != nil {
		return model.TestResult{}, err
	}

	contributions := make([]model.BinContribution, len(sample.Bins))
	statistic := 0.0
	for i, bin := range sample.Bins {
		c := Contribution(bin.Observed, bin.Expected)
		contributions[i] = model.BinContribution{
			Bin:          bin,
			Contribution: c,
		}
		statistic += c
	}

	dof := sample.DegreesOfFreedom()
	critical, err := e.provider.CriticalValue(alpha, dof)
	if err != nil {
		return model.TestResult{}, fmt.Errorf("critical value for alpha %v, dof %v: %w", alpha, dof, err)
	}

	return model.TestResult{
		Statistic:        statistic,
		CriticalValue:    critical,
		DegreesOfFreedom: dof,
		Alpha:            alpha,
		Decision:         model.Decide(statistic, critical),
		Contributions:    contributions,
	}, nil
}

// EvaluateCounts is Evaluate for frequencies without interval bounds.
func (e *Evaluator) EvaluateCounts(observed, expected []float64, alpha float64) (model.TestResult, error) {
	if len(observed) != len(expected) {
		return model.TestResult{}, fmt.Errorf("%w: length mismatch, observed: %v, expected: %v",
			common.ErrorInvalidInput, len(observed), len(expected))
	}

	bins := make([]model.Bin, len(observed))
	for i := range observed {
		bins[i] = model.Bin{
			Observed: observed[i],
			Expected: expected[i],
		}
	}
	return e.Evaluate(model.Sample{Bins: bins}, alpha)
}

// Contribution is the share (observed - expected)^2 / expected of one bin.
func Contribution(observed, expected float64) float64 {
	d := observed - expected
	return d * d / expected
}

func checkSample(sample model.Sample, alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("%w: alpha must be in (0,1), got %v", common.ErrorInvalidInput, alpha)
	}
	if sample.Len() < 2 {
		return fmt.Errorf("%w: at least 2 bins are required, got %v", common.ErrorInvalidInput, sample.Len())
	}
	for i, bin := range sample.Bins {
		if !(bin.Expected > 0) || math.IsInf(bin.Expected, 1) {
			return fmt.Errorf("%w: expected count of bin %v must be positive and finite, got %v",
				common.ErrorInvalidInput, i, bin.Expected)
		}
		if !(bin.Observed >= 0) || math.IsInf(bin.Observed, 1) {
			return fmt.Errorf("%w: observed count of bin %v must be non-negative and finite, got %v",
				common.ErrorInvalidInput, i, bin.Observed)
		}
	}
	return nil
}
