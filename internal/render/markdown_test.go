// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/cucalc/internal/feemodel"
	"github.com/dotandev/cucalc/internal/matrix"
)

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1_000"},
		{34875, "34_875"},
		{325000, "325_000"},
		{2000000, "2_000_000"},
		{-8400, "-8_400"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupDigits(tt.in), "GroupDigits(%d)", tt.in)
	}
}

func TestMarkdownTable_PadsColumnsToWidestCell(t *testing.T) {
	var buf bytes.Buffer
	err := MarkdownTable(&buf, []string{"A", "Long Header"}, [][]string{
		{"wide cell value", "x"},
		{"y", "z"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| A               | Long Header |", lines[0])
	assert.Equal(t, "| --------------- | ----------- |", lines[1])
	assert.Equal(t, "| wide cell value | x           |", lines[2])
	assert.Equal(t, "| y               | z           |", lines[3])

	// All lines are the same width.
	for _, line := range lines[1:] {
		assert.Len(t, line, len(lines[0]))
	}
}

func TestMatrixTable_RendersSampleMatrix(t *testing.T) {
	rows, err := matrix.Rows()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, MatrixTable(&buf, rows))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header + separator + 24 sample rows.
	assert.Len(t, lines, 26)

	for _, h := range MatrixHeaders {
		assert.Contains(t, lines[0], h)
	}

	// First sample: 2^16 cycles, 5 notes each way, no public data.
	assert.Contains(t, lines[2], "16 (8_000)")
	assert.Contains(t, lines[2], "5 (150)")
	assert.Contains(t, lines[2], "5 (250)")
	assert.Contains(t, lines[2], "0 (0)")
	assert.Contains(t, lines[2], "8_400")
}

func TestBreakdown(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	m := feemodel.TransactionMetrics{
		NumCycles:                  1_048_576,
		NumNotesConsumed:           250,
		NumNotesCreated:            250,
		CreatedPublicNotesByteSize: 325_000,
	}
	s, err := m.CalculateComputationUnits()
	require.NoError(t, err)

	var buf bytes.Buffer
	Breakdown(&buf, m, s)
	out := buf.String()

	assert.Contains(t, out, "1_048_576 (20)")
	assert.Contains(t, out, "10_000 units")
	assert.Contains(t, out, "7_500 units")
	assert.Contains(t, out, "12_500 units")
	assert.Contains(t, out, "325_000 (325)")
	assert.Contains(t, out, "4_875 units")
	assert.Contains(t, out, "34_875 units")
}
