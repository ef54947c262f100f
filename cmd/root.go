package cmd

import (
	"fmt"
	"os"

	"fxtool/core/config"
	"fxtool/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fxtool",
	Short: "FiveM server tooling",
	Long: `fxtool launches and maintains a FiveM server install: it starts FXServer
and connects the local client, keeps the server artifact up to date, and
inspects resource manifests for dependencies and event wiring.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report the failure through the same zap setup the subcommands
		// use. Debug level picks the development config, whose ISO8601
		// timestamps read better on a terminal than the epoch ones.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// No logger to speak through, plain print is all that is left.
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// initRuntime loads configuration and builds the shared logger. Every
// subcommand calls it first.
func initRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}

	logg = logger.WithRunID(logg)
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}
