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
	"github.com/dotandev/cucalc/internal/matrix"
	"github.com/dotandev/cucalc/internal/render"
	"github.com/dotandev/cucalc/internal/telemetry"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Price the built-in sample matrix and print it as a table",
	Long: `Price a fixed cross-product of sample transactions and print the result,
one row per sample:

  cycles:         2^16 and 2^20
  notes consumed: 5 and 250
  notes created:  5 and 250
  per-note size:  0, 1300 (P2ID note) and 8000 bytes

Each cell shows the raw input with its unit cost in parentheses. The default
output is a GitHub-flavored Markdown table suitable for pasting into a fee
review document.`,
	Args: cobra.NoArgs,
	RunE: runMatrix,
}

func runMatrix(cmd *cobra.Command, args []string) error {
	_, span := telemetry.GetTracer().Start(cmd.Context(), "matrix")
	defer span.End()

	rows, err := matrix.Rows()
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int("matrix.rows", len(rows)))

	out := cmd.OutOrStdout()
	switch outputFormat() {
	case config.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return errors.WrapMarshalFailed(err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case config.FormatText, config.FormatMarkdown:
		return render.MatrixTable(out, rows)
	default:
		return errors.WrapUnsupportedFormat(string(outputFormat()))
	}
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
