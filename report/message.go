package report

import (
	"errors"

	"github.com/uyouii/chisquare-gof/common"
)

// Message maps an evaluation error to text for the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrorInvalidInput):
		return "Please enter valid comma-separated numbers for all inputs and a valid alpha: " + err.Error()
	case errors.Is(err, common.ErrorQuantileUnavailable):
		return "No critical value is tabulated for this alpha and number of intervals, " +
			"use a tabulated alpha or the inverse_cdf strategy: " + err.Error()
	case errors.Is(err, common.ErrorNumericalNonConvergence):
		return "The critical value could not be computed to the required precision: " + err.Error()
	}
	return "Unexpected error: " + err.Error()
}
