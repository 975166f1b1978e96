package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/chisquare-gof/quantile"
	"github.com/uyouii/chisquare-gof/utils"
	"go.uber.org/zap"
)

func newCriticalCommand(a *app) *cobra.Command {
	var (
		alpha    float64
		dof      int
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Print the chi-square critical value for alpha and degrees of freedom",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.GetLogger(cmd.Context())

			qcfg := a.cfg.Quantile
			if strategy != "" {
				qcfg.Strategy = strategy
			}
			if !cmd.Flags().Changed("alpha") {
				alpha = a.cfg.Alpha
			}

			provider, err := quantile.NewProvider(qcfg)
			if err != nil {
				return err
			}
			value, err := provider.CriticalValue(alpha, dof)
			if err != nil {
				logger.Error("CriticalValue failed", zap.Error(err),
					zap.Float64("alpha", alpha), zap.Int("dof", dof))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
			return nil
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "Significance level (default from config)")
	cmd.Flags().IntVar(&dof, "dof", 1, "Degrees of freedom")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Critical value strategy: inverse_cdf | table")
	return cmd
}
