// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dotandev/cucalc/internal/config"
	"github.com/dotandev/cucalc/internal/logger"
	"github.com/dotandev/cucalc/internal/telemetry"
	"github.com/dotandev/cucalc/internal/terminal"
)

// Global flag variables
var (
	FormatFlag  string
	NoColorFlag bool
	VerboseFlag bool
)

var (
	cfg               *config.Config
	telemetryShutdown = func() {}
	renderer          terminal.Renderer = terminal.NewANSIRenderer()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cucalc",
	Short: "Transaction computation-unit estimator",
	Long: `Cucalc estimates a transaction's computation unit cost from its measured
resource usage: execution cycles, notes consumed, notes created, and public
data byte size.

The model is deterministic: cycles are priced by power-of-two bucket, notes
per item, and public data per started kilobyte.

Examples:
  cucalc estimate --cycles 65536 --notes-consumed 5 --notes-created 5
  cucalc estimate --cycles 1048576 --format json
  cucalc matrix                              Price the built-in sample matrix
  cucalc matrix --format json

Get started with 'cucalc estimate --help'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if VerboseFlag {
			cfg.LogLevel = "debug"
		}
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

		if NoColorFlag {
			color.NoColor = true
		}

		shutdown, err := telemetry.Init(cmd.Context(), telemetry.Config{
			Enabled:     cfg.Telemetry,
			ExporterURL: cfg.TelemetryEndpoint,
			ServiceName: "cucalc",
			Version:     Version,
		})
		if err != nil {
			return err
		}
		telemetryShutdown = shutdown

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetryShutdown()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// outputFormat resolves the effective output format: the --format flag wins
// over the configured default.
func outputFormat() config.Format {
	if FormatFlag != "" {
		return config.Format(FormatFlag)
	}
	return cfg.Format
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&FormatFlag,
		"format",
		"",
		"Output format: text, markdown or json (default from config)",
	)

	rootCmd.PersistentFlags().BoolVar(
		&NoColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&VerboseFlag,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}
