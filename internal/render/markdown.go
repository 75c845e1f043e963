// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

// Package render turns fee model output into human-readable form: a
// GitHub-flavored Markdown table for the sample matrix and a colorized
// per-resource breakdown for single estimates.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotandev/cucalc/internal/matrix"
)

// MatrixHeaders are the column titles of the sample matrix table.
var MatrixHeaders = []string{
	"Cycle Bucket",
	"Notes Consumed",
	"Notes Created",
	"Public Note/Account Data",
	"Computation Units",
}

// GroupDigits formats n with an underscore between each group of three
// digits, e.g. 34875 -> "34_875".
func GroupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// MarkdownTable writes headers and rows as a GitHub-flavored Markdown table.
// Each column is padded to the width of its widest cell.
func MarkdownTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) error {
		parts := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(parts, " | "))
		return err
	}

	if err := writeRow(headers); err != nil {
		return err
	}
	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", widths[i])
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(separators, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// MatrixTable writes the sample matrix as a Markdown table. Each cell shows
// the raw input with its unit cost in parentheses; the final column is the
// total.
func MatrixTable(w io.Writer, rows []matrix.Row) error {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			fmt.Sprintf("%d (%s)", row.CycleBucket, GroupDigits(row.Summary.CycleUnits)),
			fmt.Sprintf("%d (%s)", row.Metrics.NumNotesConsumed, GroupDigits(row.Summary.NotesConsumedUnits)),
			fmt.Sprintf("%d (%s)", row.Metrics.NumNotesCreated, GroupDigits(row.Summary.NotesCreatedUnits)),
			fmt.Sprintf("%s (%s)",
				GroupDigits(row.Metrics.CreatedPublicNotesByteSize+row.Metrics.PublicAccountDeltaByteSize),
				GroupDigits(row.Summary.DataUnits)),
			GroupDigits(row.Total),
		})
	}
	return MarkdownTable(w, MatrixHeaders, cells)
}
