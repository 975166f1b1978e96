package gof

import (
	"context"
	"fmt"

	"github.com/uyouii/chisquare-gof/ingest"
	"github.com/uyouii/chisquare-gof/model"
	"github.com/uyouii/chisquare-gof/quantile"
	"github.com/uyouii/chisquare-gof/utils"
	"go.uber.org/zap"
)

// EvaluateInput builds the provider named by cfg and runs the test on parsed user input.
func EvaluateInput(ctx context.Context, input ingest.Input,
	cfg quantile.Config) (result model.TestResult, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("EvaluateInput recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("input", input))
			result, err = model.TestResult{}, fmt.Errorf("evaluate panic: %v", r)
		}
	}()

	provider, err := quantile.NewProvider(cfg)
	if err != nil {
		logger.Error("NewProvider failed", zap.Error(err), zap.String("strategy", cfg.Strategy))
		return model.TestResult{}, err
	}

	sample, err := input.Sample()
	if err != nil {
		logger.Error("build sample failed", zap.Error(err))
		return model.TestResult{}, err
	}

	logger.Debug("begin evaluate", zap.String("sample", sample.DebugString()),
		zap.Float64("alpha", input.Alpha), zap.String("strategy", cfg.Strategy))

	result, err = NewEvaluator(provider).Evaluate(sample, input.Alpha)
	if err != nil {
		logger.Error("Evaluate failed", zap.Error(err), zap.Float64("alpha", input.Alpha))
		return model.TestResult{}, err
	}

	logger.Info("evaluate success",
		zap.Float64("statistic", result.Statistic),
		zap.Float64("criticalValue", result.CriticalValue),
		zap.Int("dof", result.DegreesOfFreedom),
		zap.Stringer("decision", result.Decision))
	return result, nil
}
