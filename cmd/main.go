package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"valuation/internal/config"
)

// app carries what every subcommand shares once the root has run.
type app struct {
	configPath string
	envFile    string
	verbose    bool

	stdout io.Writer
	stdin  *os.File

	// newLogger is swapped out in tests.
	newLogger func(verbose bool) (*zap.Logger, error)

	logger *zap.Logger
	cfg    config.Config
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newRootCmd(a *app) *cobra.Command {
	gen := &generateFlags{}

	root := &cobra.Command{
		Use:   "valuation",
		Short: "Generate the Brookfieldz Devbhumi Residency valuation report",
		Long: `valuation writes the bank valuation report for Flat A/503, Brookfieldz
Devbhumi Residency, Manjalpur, Vadodara, in the standard, compact and exact
layouts as PDF or DOCX, and keeps a register of every issue.

Run without a subcommand to generate with the configured defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			cfg, err := config.Load(a.configPath, a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Debug("configuration loaded",
				zap.String("config", a.configPath),
				zap.String("out", cfg.Out),
				zap.Strings("layouts", cfg.Layouts),
				zap.String("archive", cfg.Archive),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, gen)
		},
	}

	gen.bind(root)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "KEY=value file read into the environment")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenerateCmd(a), newPickCmd(a), newIssuedCmd(a))
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{stdout: os.Stdout, stdin: os.Stdin, newLogger: productionLogger}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
