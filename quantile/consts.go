package quantile

const (
	StrategyInverseCDF = "inverse_cdf"
	StrategyTable      = "table"

	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 100
)
