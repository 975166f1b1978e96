package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uyouii/chisquare-gof/common"
	"github.com/uyouii/chisquare-gof/model"
	"github.com/uyouii/chisquare-gof/utils"
	"go.uber.org/multierr"
)

// RawInput holds user supplied comma-separated lists, like "2.5, 5, 7.5, 10".
type RawInput struct {
	UpperLimits string `json:"upper_limits"`
	Observed    string `json:"observed"`
	Expected    string `json:"expected"`
	Alpha       string `json:"alpha"`
}

type Input struct {
	UpperLimits []float64
	Observed    []float64
	Expected    []float64
	Alpha       float64
}

// Parse checks numeric well-formedness and equal lengths. All malformed fields are
// reported in one error.
func Parse(raw RawInput) (Input, error) {
	var errs error

	upper, err := ParseList(raw.UpperLimits)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("upper limits: %w", err))
	}
	observed, err := ParseList(raw.Observed)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("observed frequencies: %w", err))
	}
	expected, err := ParseList(raw.Expected)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("expected frequencies: %w", err))
	}
	alpha, err := parseNumber(raw.Alpha)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("alpha: %w", err))
	}
	if errs != nil {
		return Input{}, fmt.Errorf("%w: %w", common.ErrorInvalidInput, errs)
	}

	in := Input{
		UpperLimits: upper,
		Observed:    observed,
		Expected:    expected,
		Alpha:       alpha,
	}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Validate checks lengths and the partition. Frequency values are left to the evaluator.
func (in Input) Validate() error {
	if len(in.UpperLimits) != len(in.Observed) || len(in.Observed) != len(in.Expected) {
		return fmt.Errorf("%w: length mismatch, upper limits: %v, observed: %v, expected: %v",
			common.ErrorInvalidInput, len(in.UpperLimits), len(in.Observed), len(in.Expected))
	}

	lower := 0.0
	for i, upper := range in.UpperLimits {
		if upper <= lower {
			return fmt.Errorf("%w: upper limit %v at position %v must be greater than %v",
				common.ErrorInvalidInput, upper, i+1, lower)
		}
		lower = upper
	}
	return nil
}

func (in Input) Sample() (model.Sample, error) {
	return model.NewSample(in.UpperLimits, in.Observed, in.Expected)
}

// ParseList parses a comma-separated list of finite numbers.
func ParseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty list")
	}

	items := strings.Split(s, ",")
	res := make([]float64, 0, len(items))
	for i, item := range items {
		v, err := parseNumber(item)
		if err != nil {
			return nil, fmt.Errorf("item %v: %w", i+1, err)
		}
		res = append(res, v)
	}
	return res, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if !utils.IsFinite(v) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
