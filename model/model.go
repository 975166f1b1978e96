package model

import (
	"fmt"

	"github.com/uyouii/chisquare-gof/common"
)

// Bin is one interval of the partition. Lower of the first bin is 0 and Upper of
// bin i equals Lower of bin i+1.
type Bin struct {
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Observed float64 `json:"observed"`
	Expected float64 `json:"expected"`
}

// Interval is the display label of the bin, like "0 - 2.5".
func (b *Bin) Interval() string {
	return fmt.Sprintf("%v - %v", b.Lower, b.Upper)
}

type Sample struct {
	Bins []Bin
}

// NewSample builds contiguous bins from parallel upper limit, observed and expected
// sequences. The first bin starts at 0.
func NewSample(upper, observed, expected []float64) (Sample, error) {
	if len(upper) != len(observed) || len(observed) != len(expected) {
		return Sample{}, fmt.Errorf("%w: length mismatch, upper: %v, observed: %v, expected: %v",
			common.ErrorInvalidInput, len(upper), len(observed), len(expected))
	}

	bins := make([]Bin, 0, len(upper))
	lower := 0.0
	for i := range upper {
		bins = append(bins, Bin{
			Lower:    lower,
			Upper:    upper[i],
			Observed: observed[i],
			Expected: expected[i],
		})
		lower = upper[i]
	}
	return Sample{Bins: bins}, nil
}

func (s *Sample) Len() int {
	return len(s.Bins)
}

// DegreesOfFreedom is recomputed from the bin count on every call.
func (s *Sample) DegreesOfFreedom() int {
	return len(s.Bins) - 1
}

func (s *Sample) Observed() []float64 {
	res := make([]float64, len(s.Bins))
	for i := range s.Bins {
		res[i] = s.Bins[i].Observed
	}
	return res
}

func (s *Sample) Expected() []float64 {
	res := make([]float64, len(s.Bins))
	for i := range s.Bins {
		res[i] = s.Bins[i].Expected
	}
	return res
}

func (s *Sample) DebugString() string {
	return fmt.Sprintf("binCount: %v, dof: %v", s.Len(), s.DegreesOfFreedom())
}
