package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/uyouii/chisquare-gof/config"
	"github.com/uyouii/chisquare-gof/utils"
	"go.uber.org/zap"
)

var version = "dev"

// app is the state shared by subcommands once the root pre-run has loaded config.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

// newRootCommand builds the CLI. A nil logger is replaced by one built from config.
func newRootCommand(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	cmd := &cobra.Command{
		Use:   "chisq",
		Short: "Chi-square goodness-of-fit test",
		Long: `chisq runs a chi-square goodness-of-fit test over a partition of intervals.

Observed and expected frequencies are compared bin by bin, the statistic is checked
against the critical value for the chosen significance level, and the null hypothesis
is rejected or not.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath := cmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		if *debugLogging {
			cfg.LogLevel = "debug"
		}
		a.cfg = cfg

		if a.logger == nil {
			logger, err := utils.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
		}
		cmd.SetContext(utils.WithLogger(cmd.Context(), a.logger))
		return nil
	}

	cmd.AddCommand(newTestCommand(a))
	cmd.AddCommand(newCriticalCommand(a))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand(nil)
	return rootCmd.ExecuteContext(context.Background())
}
