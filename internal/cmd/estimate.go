// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dotandev/cucalc/internal/config"
	"github.com/dotandev/cucalc/internal/errors"
	"github.com/dotandev/cucalc/internal/feemodel"
	"github.com/dotandev/cucalc/internal/logger"
	"github.com/dotandev/cucalc/internal/render"
	"github.com/dotandev/cucalc/internal/telemetry"
)

var (
	cyclesFlag            int64
	notesConsumedFlag     int64
	notesCreatedFlag      int64
	publicNoteBytesFlag   int64
	accountDeltaBytesFlag int64
)

// estimateResult is the JSON document emitted by --format json.
type estimateResult struct {
	Metrics     feemodel.TransactionMetrics `json:"metrics"`
	Summary     feemodel.ComputationSummary `json:"summary"`
	CycleBucket int64                       `json:"cycle_bucket"`
	KiloBytes   int64                       `json:"kilo_bytes"`
	Total       int64                       `json:"total_computation_units"`
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price a single transaction from its resource usage",
	Long: `Estimate computation units for one transaction.

The cost model applies four fixed rates:
  - Cycle bucket (ceil(log2(cycles))):  500 units per bucket index
  - Notes created:                       50 units each
  - Notes consumed:                      30 units each
  - Public data:                         15 units per started kilobyte

Cycles must be at least 1; all other inputs must be non-negative.`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func runEstimate(cmd *cobra.Command, args []string) error {
	_, span := telemetry.GetTracer().Start(cmd.Context(), "estimate")
	defer span.End()

	metrics := feemodel.TransactionMetrics{
		NumCycles:                  cyclesFlag,
		NumNotesConsumed:           notesConsumedFlag,
		NumNotesCreated:            notesCreatedFlag,
		CreatedPublicNotesByteSize: publicNoteBytesFlag,
		PublicAccountDeltaByteSize: accountDeltaBytesFlag,
	}

	summary, err := metrics.CalculateComputationUnits()
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(
		attribute.Int64("tx.num_cycles", metrics.NumCycles),
		attribute.Int64("tx.cycle_bucket", metrics.CycleBucket()),
		attribute.Int64("tx.total_computation_units", summary.TotalComputationUnits()),
	)
	logger.Logger.Debug("estimate computed",
		"cycle_bucket", metrics.CycleBucket(),
		"kilo_bytes", metrics.KiloBytes(),
		"total", summary.TotalComputationUnits(),
	)

	out := cmd.OutOrStdout()
	switch outputFormat() {
	case config.FormatJSON:
		data, err := json.MarshalIndent(estimateResult{
			Metrics:     metrics,
			Summary:     summary,
			CycleBucket: metrics.CycleBucket(),
			KiloBytes:   metrics.KiloBytes(),
			Total:       summary.TotalComputationUnits(),
		}, "", "  ")
		if err != nil {
			return errors.WrapMarshalFailed(err)
		}
		fmt.Fprintln(out, string(data))
	case config.FormatMarkdown:
		if err := render.MarkdownTable(out, render.MatrixHeaders, [][]string{{
			fmt.Sprintf("%d (%s)", metrics.CycleBucket(), render.GroupDigits(summary.CycleUnits)),
			fmt.Sprintf("%d (%s)", metrics.NumNotesConsumed, render.GroupDigits(summary.NotesConsumedUnits)),
			fmt.Sprintf("%d (%s)", metrics.NumNotesCreated, render.GroupDigits(summary.NotesCreatedUnits)),
			fmt.Sprintf("%s (%s)",
				render.GroupDigits(metrics.CreatedPublicNotesByteSize+metrics.PublicAccountDeltaByteSize),
				render.GroupDigits(summary.DataUnits)),
			render.GroupDigits(summary.TotalComputationUnits()),
		}}); err != nil {
			return err
		}
	case config.FormatText:
		render.Breakdown(out, metrics, summary)
		printDomainWarnings(metrics)
	default:
		return errors.WrapUnsupportedFormat(string(outputFormat()))
	}

	return nil
}

// printDomainWarnings flags inputs that are priceable but fall outside the
// domain the rates were calibrated for.
func printDomainWarnings(m feemodel.TransactionMetrics) {
	warn := func(msg string) {
		renderer.Printf("\n%s %s\n", renderer.Warning(), msg)
	}
	if m.NumCycles < 1<<10 || m.NumCycles > 1<<29 {
		warn(fmt.Sprintf("cycle count %d is outside the calibrated domain 2^10..2^29", m.NumCycles))
	}
	if m.NumNotesConsumed > 1024 {
		warn(fmt.Sprintf("%d consumed notes exceeds the calibrated maximum of 1024", m.NumNotesConsumed))
	}
	if m.NumNotesCreated > 1024 {
		warn(fmt.Sprintf("%d created notes exceeds the calibrated maximum of 1024", m.NumNotesCreated))
	}
}

func init() {
	estimateCmd.Flags().Int64Var(&cyclesFlag, "cycles", 0, "Execution cycle count (required)")
	estimateCmd.Flags().Int64Var(&notesConsumedFlag, "notes-consumed", 0, "Number of notes consumed")
	estimateCmd.Flags().Int64Var(&notesCreatedFlag, "notes-created", 0, "Number of notes created")
	estimateCmd.Flags().Int64Var(&publicNoteBytesFlag, "public-note-bytes", 0, "Combined byte size of created public notes")
	estimateCmd.Flags().Int64Var(&accountDeltaBytesFlag, "account-delta-bytes", 0, "Byte size of the public account delta")
	_ = estimateCmd.MarkFlagRequired("cycles")

	rootCmd.AddCommand(estimateCmd)
}
