package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lukaszgryglicki/hepcalc/internal/hepcalc"
)

var (
	cfgPath string
	format  string
	debug   bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hepcalc",
	Short: "Four-momentum log-product calculation",
	Long: `Transforms three four-momenta, takes the product of the logarithms of the
transformed transverse momentum squared and mass squared (both over q²) and
multiplies it by a·(b+c).

Without arguments the reference momenta are used:
  a = (200, 0, 0, 200), b = (90, 30, 30, 2000), c = (45, 15, 20, 1000), q² = 100`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug = debug || os.Getenv("DEBUG") != ""
		hepcalc.Debug = debug

		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "JSON or YAML file with events (default: reference momenta)")
	rootCmd.Flags().StringVar(&format, "format", "", "output format: text or json (overrides config)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "debug logging and per-stage statistics")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := hepcalc.DefaultConfig()
	if cfgPath != "" {
		loaded, err := hepcalc.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = *loaded
		logger.Debug("config loaded", zap.String("path", cfgPath), zap.Int("events", len(cfg.Events)))
	}
	if format != "" {
		cfg.Format = format
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	_, err := hepcalc.Run(ctx, cfg, cmd.OutOrStdout(), logger)
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
