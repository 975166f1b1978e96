package report

import (
	"encoding/json"
	"io"

	"github.com/uyouii/chisquare-gof/model"
)

type jsonBin struct {
	Interval     string  `json:"interval"`
	Lower        float64 `json:"lower"`
	Upper        float64 `json:"upper"`
	Observed     float64 `json:"observed"`
	Expected     float64 `json:"expected"`
	Contribution float64 `json:"contribution"`
}

type jsonResult struct {
	Statistic        float64   `json:"statistic"`
	CriticalValue    float64   `json:"critical_value"`
	DegreesOfFreedom int       `json:"degrees_of_freedom"`
	Alpha            float64   `json:"alpha"`
	RejectNull       bool      `json:"reject_null"`
	Conclusion       string    `json:"conclusion"`
	Bins             []jsonBin `json:"bins"`
}

// WriteJSON writes result at full precision.
func WriteJSON(w io.Writer, result model.TestResult) error {
	out := jsonResult{
		Statistic:        result.Statistic,
		CriticalValue:    result.CriticalValue,
		DegreesOfFreedom: result.DegreesOfFreedom,
		Alpha:            result.Alpha,
		RejectNull:       result.RejectNull(),
		Conclusion:       result.Decision.String(),
		Bins:             make([]jsonBin, 0, len(result.Contributions)),
	}
	for _, c := range result.Contributions {
		out.Bins = append(out.Bins, jsonBin{
			Interval:     c.Bin.Interval(),
			Lower:        c.Bin.Lower,
			Upper:        c.Bin.Upper,
			Observed:     c.Bin.Observed,
			Expected:     c.Bin.Expected,
			Contribution: c.Contribution,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
