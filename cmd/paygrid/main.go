// Command paygrid builds payoff matrices, transforms and analyzes them, and
// runs the multi-universe civilization simulation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paygrid/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Set up by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paygrid",
	Short: "Game-theory payoff matrices and their transforms",
	Long: `paygrid reads and writes two-player payoff matrices as YAML or JSON and
derives new matrices from them:

  evolutionary    relax every payoff toward its neighbourhood mean
  nash            boost equilibrium-supporting outcomes, damp the rest
  pareto          boost Pareto-optimal outcomes
  multi-universe  branch into optimistic and pessimistic siblings

Configuration comes from --config (YAML) and PAYGRID_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = cfg.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("idScheme", cfg.IDScheme))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "paygrid.yaml", "Configuration file (missing file means defaults)")

	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
