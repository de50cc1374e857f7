// Package cmd implements the CLI commands for wikichunk using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/wikichunk/core/config"
	"github.com/gaurav-prasanna/wikichunk/core/logging"
)

// Persistent flag variables.
var (
	flagConfig   string
	flagLogLevel string
	flagLogDev   bool
)

var rootCmd = &cobra.Command{
	Use:   "wikichunk",
	Short: "wikichunk — turn downloaded wiki pages into metadata-tagged text chunks",
	Long: `wikichunk reads a directory of rendered wiki pages and extracts info-boxes,
drop tables, crafting recipes, variant stats, achievements and bulleted
sections into short text passages tagged with page and section, plus a
report of the markup it did not recognize.

Usage:
  wikichunk extract --input ./pages [flags]
  wikichunk inspect <file> [flags]

Every flag can also be set with a WIKICHUNK_* environment variable or in
the YAML file passed with --config.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagLogDev, "log-dev", false, "Human-readable console logs")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, environment and the --config file, then the
// persistent flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-dev") {
		cfg.Log.Development = flagLogDev
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	log, err := logging.New(cfg.Logging())
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return log, nil
}
