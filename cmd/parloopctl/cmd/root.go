package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	appconfig "github.com/antineutrino2/jtk/pkg/config"
	"github.com/antineutrino2/jtk/pkg/parallel"
	"github.com/antineutrino2/jtk/pkg/telemetry"
	"github.com/antineutrino2/jtk/pkg/utils"
)

var (
	cfgFile string
	cfg     *appconfig.Config
	logger  utils.Logger

	telemetryShutdown telemetry.ShutdownFunc
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "parloopctl",
	Short: "Run demonstration scenarios for the parallel loop/reduce engine",
	Long: `parloopctl drives the parallel package's Loop and Reduce entry
points through the scenarios used to specify their behavior: splitting a
range across the worker pool, combining reduction results in strict
left-to-right order, and recursing from inside a running loop body
without deadlocking.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		logger = utils.NewDefaultLogger(utils.ParseLogLevel(cfg.Log.Level), os.Stdout)
		utils.SetGlobalLogger(logger)

		if cfg.Engine.Parallelism > 0 {
			parallel.SetTestParallelism(cfg.Engine.Parallelism)
		}

		if cfg.Telemetry.Enabled {
			shutdown, err := telemetry.Init(context.Background())
			if err != nil {
				logger.Warn("telemetry init failed: %v", err)
				shutdown = func(context.Context) error { return nil }
			}
			telemetryShutdown = shutdown
		} else {
			telemetryShutdown = func(context.Context) error { return nil }
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(context.Background())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to parloopctl.yaml (defaults searched if omitted)")
}

// GetLogger returns the CLI's configured logger.
func GetLogger() utils.Logger {
	return logger
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
