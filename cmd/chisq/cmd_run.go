package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/chisquare-gof/common"
	"github.com/uyouii/chisquare-gof/gof"
	"github.com/uyouii/chisquare-gof/ingest"
	"github.com/uyouii/chisquare-gof/report"
)

type testOptions struct {
	raw      ingest.RawInput
	strategy string
	format   string
	chart    bool
	width    int
}

func newTestCommand(a *app) *cobra.Command {
	opts := &testOptions{}

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the goodness-of-fit test",
		Long: `Run the goodness-of-fit test on comma-separated frequency lists.

Example:
  chisq test --upper 2,4,6,8,10 --observed 18,22,25,20,15 --expected 20,20,20,20,20 --alpha 0.05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, a, opts)
		},
	}
	cmd.Flags().StringVar(&opts.raw.UpperLimits, "upper", "", "Upper limits of the intervals, comma-separated")
	cmd.Flags().StringVar(&opts.raw.Observed, "observed", "", "Observed frequencies, comma-separated")
	cmd.Flags().StringVar(&opts.raw.Expected, "expected", "", "Expected frequencies, comma-separated")
	cmd.Flags().StringVar(&opts.raw.Alpha, "alpha", "", "Significance level (default from config)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Critical value strategy: inverse_cdf | table")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text | json")
	cmd.Flags().BoolVar(&opts.chart, "chart", false, "Draw a bar chart of observed and expected frequencies")
	cmd.Flags().IntVar(&opts.width, "width", report.DefaultChartWidth, "Bar chart width in cells")
	return cmd
}

func runTest(cmd *cobra.Command, a *app, opts *testOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("%w: unknown output format %q", common.ErrorInvalidInput, opts.format)
	}

	raw := opts.raw
	if raw.Alpha == "" {
		raw.Alpha = fmt.Sprintf("%v", a.cfg.Alpha)
	}
	input, err := ingest.Parse(raw)
	if err != nil {
		return err
	}

	qcfg := a.cfg.Quantile
	if opts.strategy != "" {
		qcfg.Strategy = opts.strategy
	}

	result, err := gof.EvaluateInput(cmd.Context(), input, qcfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		return report.WriteJSON(out, result)
	}
	if err := report.WriteTable(out, result); err != nil {
		return err
	}
	if opts.chart {
		fmt.Fprintln(out)
		return report.WriteChart(out, result, opts.width)
	}
	return nil
}
