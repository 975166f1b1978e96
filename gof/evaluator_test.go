package gof

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/chisquare-gof/common"
	"github.com/uyouii/chisquare-gof/model"
	"github.com/uyouii/chisquare-gof/quantile"
	"gonum.org/v1/gonum/stat"
	"pgregory.net/rapid"
)

// fixedProvider returns the same critical value (or error) for every request.
type fixedProvider struct {
	value float64
	err   error
	calls int
}

func (p *fixedProvider) CriticalValue(alpha float64, dof int) (float64, error) {
	p.calls++
	return p.value, p.err
}

func exampleSample(t *testing.T) model.Sample {
	sample, err := model.NewSample(
		[]float64{2, 4, 6, 8, 10},
		[]float64{18, 22, 25, 20, 15},
		[]float64{20, 20, 20, 20, 20},
	)
	require.NoError(t, err)
	return sample
}

func TestEvaluateExample(t *testing.T) {
	for _, strategy := range []string{quantile.StrategyInverseCDF, quantile.StrategyTable} {
		t.Run(strategy, func(t *testing.T) {
			provider, err := quantile.NewProvider(quantile.Config{Strategy: strategy})
			require.NoError(t, err)

			res, err := NewEvaluator(provider).Evaluate(exampleSample(t), 0.05)
			require.NoError(t, err)

			assert.Equal(t, 4, res.DegreesOfFreedom)
			assert.InDelta(t, 2.9, res.Statistic, 1e-12)
			assert.InDelta(t, 9.488, res.CriticalValue, 1e-3)
			assert.Equal(t, 0.05, res.Alpha)
			assert.Equal(t, model.FailToReject, res.Decision)
			assert.False(t, res.RejectNull())

			require.Len(t, res.Contributions, 5)
			want := []float64{0.2, 0.2, 1.25, 0, 1.25}
			for i, c := range res.Contributions {
				assert.InDelta(t, want[i], c.Contribution, 1e-12)
			}
			assert.Equal(t, 6.0, res.Contributions[3].Bin.Lower)
			assert.Equal(t, 8.0, res.Contributions[3].Bin.Upper)
		})
	}
}

func TestEvaluateRejects(t *testing.T) {
	provider := quantile.NewInverseCDFProvider(0, 0)

	res, err := NewEvaluator(provider).EvaluateCounts(
		[]float64{50, 10, 10, 10, 20},
		[]float64{20, 20, 20, 20, 20}, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, res.Statistic, 1e-12)
	assert.Equal(t, model.Reject, res.Decision)
	assert.True(t, res.RejectNull())
}

func TestEvaluateEqualityRejects(t *testing.T) {
	provider := &fixedProvider{value: 2.5}

	// (3-2)^2/2 + (1-2)^2/2 = 1
	res, err := NewEvaluator(provider).EvaluateCounts([]float64{3, 1}, []float64{2, 2}, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Statistic)

	provider.value = 1.0
	res, err = NewEvaluator(provider).EvaluateCounts([]float64{3, 1}, []float64{2, 2}, 0.05)
	require.NoError(t, err)
	assert.Equal(t, model.Reject, res.Decision)

	provider.value = 1.0000001
	res, err = NewEvaluator(provider).EvaluateCounts([]float64{3, 1}, []float64{2, 2}, 0.05)
	require.NoError(t, err)
	assert.Equal(t, model.FailToReject, res.Decision)
}

func TestEvaluateInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		observed []float64
		expected []float64
		alpha    float64
	}{
		{name: "zero expected", observed: []float64{1, 2, 3}, expected: []float64{1, 0, 3}, alpha: 0.05},
		{name: "negative expected", observed: []float64{1, 2, 3}, expected: []float64{1, -2, 3}, alpha: 0.05},
		{name: "negative observed", observed: []float64{1, -2, 3}, expected: []float64{1, 2, 3}, alpha: 0.05},
		{name: "length mismatch", observed: []float64{1, 2, 3}, expected: []float64{1, 2}, alpha: 0.05},
		{name: "single bin", observed: []float64{1}, expected: []float64{1}, alpha: 0.05},
		{name: "empty", observed: nil, expected: nil, alpha: 0.05},
		{name: "alpha zero", observed: []float64{1, 2}, expected: []float64{1, 2}, alpha: 0},
		{name: "alpha one", observed: []float64{1, 2}, expected: []float64{1, 2}, alpha: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fixedProvider{value: 1}
			_, err := NewEvaluator(provider).EvaluateCounts(tt.observed, tt.expected, tt.alpha)
			assert.ErrorIs(t, err, common.ErrorInvalidInput)
			assert.Zero(t, provider.calls, "provider must not be queried for invalid input")
		})
	}
}

func TestEvaluatePropagatesProviderErrors(t *testing.T) {
	for _, sentinel := range []error{common.ErrorQuantileUnavailable, common.ErrorNumericalNonConvergence} {
		provider := &fixedProvider{err: fmt.Errorf("%w: detail", sentinel)}
		_, err := NewEvaluator(provider).Evaluate(exampleSample(t), 0.05)
		assert.ErrorIs(t, err, sentinel)
	}
}

func TestEvaluateTableGap(t *testing.T) {
	observed := make([]float64, 40)
	expected := make([]float64, 40)
	for i := range observed {
		observed[i], expected[i] = 5, 5
	}

	_, err := NewEvaluator(quantile.NewTableProvider()).EvaluateCounts(observed, expected, 0.05)
	assert.True(t, errors.Is(err, common.ErrorQuantileUnavailable))

	res, err := NewEvaluator(quantile.NewInverseCDFProvider(0, 0)).EvaluateCounts(observed, expected, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 39, res.DegreesOfFreedom)
	assert.Equal(t, model.FailToReject, res.Decision)
}

func TestEvaluateProperties(t *testing.T) {
	evaluator := NewEvaluator(quantile.NewInverseCDFProvider(0, 0))

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 60).Draw(rt, "bins")
		observed := rapid.SliceOfN(rapid.Float64Range(0, 1e4), n, n).Draw(rt, "observed")
		expected := rapid.SliceOfN(rapid.Float64Range(1e-3, 1e4), n, n).Draw(rt, "expected")
		alpha := rapid.Float64Range(0.0001, 0.9999).Draw(rt, "alpha")

		res, err := evaluator.EvaluateCounts(observed, expected, alpha)
		require.NoError(rt, err)

		assert.GreaterOrEqual(rt, res.Statistic, 0.0)
		assert.Equal(rt, n-1, res.DegreesOfFreedom)
		assert.Len(rt, res.Contributions, n)
		assert.InEpsilon(rt, stat.ChiSquare(observed, expected)+1, res.Statistic+1, 1e-9)
		assert.Equal(rt, res.Statistic < res.CriticalValue, res.Decision == model.FailToReject)
	})
}

func TestEvaluatePerfectFit(t *testing.T) {
	evaluator := NewEvaluator(quantile.NewInverseCDFProvider(0, 0))

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 40).Draw(rt, "bins")
		counts := rapid.SliceOfN(rapid.Float64Range(1e-3, 1e6), n, n).Draw(rt, "counts")

		res, err := evaluator.EvaluateCounts(counts, counts, 0.05)
		require.NoError(rt, err)
		assert.Equal(rt, 0.0, res.Statistic)
		assert.Equal(rt, model.FailToReject, res.Decision)
	})
}

func TestDegreesOfFreedomFollowsBinCount(t *testing.T) {
	evaluator := NewEvaluator(quantile.NewInverseCDFProvider(0, 0))

	sample := exampleSample(t)
	res, err := evaluator.Evaluate(sample, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 4, res.DegreesOfFreedom)

	sample.Bins = append(sample.Bins, model.Bin{Lower: 10, Upper: 12, Observed: 20, Expected: 20})
	res, err = evaluator.Evaluate(sample, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 5, res.DegreesOfFreedom)
}
