package common

import "errors"

var (
	// ErrorInvalidInput covers malformed samples: length mismatch, non-positive expected
	// counts, alpha outside (0,1) and degrees of freedom below 1.
	ErrorInvalidInput = errors.New("invalid input")

	// ErrorQuantileUnavailable means the provider has no critical value for the requested
	// (dof, alpha) pair. It is never reported as a zero critical value.
	ErrorQuantileUnavailable = errors.New("quantile unavailable")

	ErrorNumericalNonConvergence = errors.New("numerical non-convergence")
)
