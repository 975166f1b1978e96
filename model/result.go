package model

type Decision int

const (
	FailToReject Decision = 1
	Reject       Decision = 2
)

func (d Decision) String() string {
	switch d {
	case FailToReject:
		return "fail to reject the null hypothesis"
	case Reject:
		return "reject the null hypothesis"
	}
	return "unknown decision"
}

// Decide fails to reject only when statistic is strictly below critical.
func Decide(statistic, critical float64) Decision {
	if statistic < critical {
		return FailToReject
	}
	return Reject
}

type BinContribution struct {
	Bin          Bin     `json:"bin"`
	Contribution float64 `json:"contribution"` // (observed - expected)^2 / expected
}

// TestResult is produced fresh by every evaluation. All values are kept at full
// precision, rounding is left to the renderer.
type TestResult struct {
	Statistic        float64           `json:"statistic"`
	CriticalValue    float64           `json:"critical_value"`
	DegreesOfFreedom int               `json:"degrees_of_freedom"`
	Alpha            float64           `json:"alpha"`
	Decision         Decision          `json:"decision"`
	Contributions    []BinContribution `json:"contributions"`
}

func (r TestResult) RejectNull() bool {
	return r.Decision == Reject
}
