package quantile

import (
	"fmt"
	"math"

	"github.com/uyouii/chisquare-gof/common"
	"gonum.org/v1/gonum/stat/distuv"
)

// InverseCDFProvider computes critical values by inverting the chi-square cdf.
type InverseCDFProvider struct {
	// relative tolerance on x between two iterations
	tolerance     float64
	maxIterations int
}

// NewInverseCDFProvider uses the defaults for a non-positive tolerance or iteration cap.
func NewInverseCDFProvider(tolerance float64, maxIterations int) *InverseCDFProvider {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &InverseCDFProvider{
		tolerance:     tolerance,
		maxIterations: maxIterations,
	}
}

func (p *InverseCDFProvider) CriticalValue(alpha float64, dof int) (float64, error) {
	if err := checkArgs(alpha, dof); err != nil {
		return 0, err
	}
	return p.Quantile(1-alpha, float64(dof))
}

// Quantile returns x with CDF_k(x) = prob, prob in (0,1) and k > 0.
//
// Newton steps on CDF_k(x) - prob, the density is the derivative. Every evaluated
// point narrows the bracket [lo, hi] around the root, a step leaving the bracket is
// replaced by doubling (no upper bound yet) or bisection.
func (p *InverseCDFProvider) Quantile(prob, k float64) (float64, error) {
	if !(prob > 0 && prob < 1) {
		return 0, fmt.Errorf("%w: probability must be in (0,1), got %v", common.ErrorInvalidInput, prob)
	}
	if !(k > 0) || math.IsInf(k, 1) {
		return 0, fmt.Errorf("%w: degrees of freedom must be positive, got %v", common.ErrorInvalidInput, k)
	}

	dist := distuv.ChiSquared{K: k}
	x := initialGuess(prob, k)
	lo, hi := 0.0, math.Inf(1)

	for i := 0; i < p.maxIterations; i++ {
		diff := dist.CDF(x) - prob
		if diff == 0 {
			return x, nil
		}
		if diff < 0 {
			lo = x
		} else {
			hi = x
		}

		next := x - diff/dist.Prob(x)
		if !(next > lo && next < hi) {
			if math.IsInf(hi, 1) {
				next = 2 * x
			} else {
				next = lo + (hi-lo)/2
			}
		}

		if math.Abs(next-x) <= p.tolerance*math.Abs(next) {
			return next, nil
		}
		x = next
	}

	return 0, fmt.Errorf("%w: chi-square quantile not converged after %v iterations, prob: %v, dof: %v, last: %v",
		common.ErrorNumericalNonConvergence, p.maxIterations, prob, k, x)
}

// initialGuess uses the Wilson-Hilferty cube approximation, and the leading term of
// the lower incomplete gamma series when that is not positive (small prob, small k).
func initialGuess(prob, k float64) float64 {
	z := distuv.UnitNormal.Quantile(prob)
	h := 2 / (9 * k)
	w := 1 - h + z*math.Sqrt(h)
	if w > 0 {
		return k * w * w * w
	}

	// CDF_k(x) ~ (x/2)^(k/2) / Gamma(k/2+1)
	lg, _ := math.Lgamma(k/2 + 1)
	return 2 * math.Exp((math.Log(prob)+lg)*2/k)
}
