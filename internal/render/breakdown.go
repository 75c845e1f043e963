// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dotandev/cucalc/internal/feemodel"
)

var (
	labelStyle = color.New(color.Faint)
	valueStyle = color.New(color.FgCyan)
	totalStyle = color.New(color.FgGreen, color.Bold)
)

// Breakdown writes a per-resource cost breakdown for a single estimate.
// Color is applied through fatih/color, which degrades to plain text when
// stdout is not a terminal or NO_COLOR is set.
func Breakdown(w io.Writer, m feemodel.TransactionMetrics, s feemodel.ComputationSummary) {
	line := func(label string, input string, units int64) {
		fmt.Fprintf(w, "  %s %s  %s\n",
			labelStyle.Sprintf("%-26s", label),
			fmt.Sprintf("%14s", input),
			valueStyle.Sprintf("%s units", GroupDigits(units)),
		)
	}

	fmt.Fprintln(w, "Computation unit estimate")
	fmt.Fprintln(w)
	line("Cycles (bucket)",
		fmt.Sprintf("%s (%d)", GroupDigits(m.NumCycles), m.CycleBucket()),
		s.CycleUnits)
	line("Notes consumed", GroupDigits(m.NumNotesConsumed), s.NotesConsumedUnits)
	line("Notes created", GroupDigits(m.NumNotesCreated), s.NotesCreatedUnits)
	line("Public data (kilobytes)",
		fmt.Sprintf("%s (%d)",
			GroupDigits(m.CreatedPublicNotesByteSize+m.PublicAccountDeltaByteSize),
			m.KiloBytes()),
		s.DataUnits)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n",
		labelStyle.Sprintf("%-26s", "Total"),
		totalStyle.Sprintf("%s units", GroupDigits(s.TotalComputationUnits())),
	)
}
