// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

// Package matrix drives the fee model across a fixed cross-product of sample
// transactions. It exists for demonstration and review of the pricing curve;
// it carries no pricing logic of its own.
package matrix

import (
	"github.com/dotandev/cucalc/internal/feemodel"
)

// ─── Sample inputs ────────────────────────────────────────────────────────────

const (
	// TxCyclesSmall is a typical small transaction, 2^16 cycles.
	TxCyclesSmall int64 = 1 << 16

	// TxCyclesLarge is a heavy transaction, 2^20 cycles.
	TxCyclesLarge int64 = 1 << 20

	// NumNotesSmall and NumNotesLarge bracket realistic note counts.
	NumNotesSmall int64 = 5
	NumNotesLarge int64 = 250

	// P2IDNoteSize is the approximate byte size of a P2ID note with one asset.
	P2IDNoteSize int64 = 1300

	// NoteSizeLarge approximates a note carrying a large custom script.
	NoteSizeLarge int64 = 8000
)

// Row is one priced sample. It keeps the input metrics next to the summary
// plus the derived bucket and kilobyte values so renderers do not recompute
// them.
type Row struct {
	Metrics     feemodel.TransactionMetrics `json:"metrics"`
	Summary     feemodel.ComputationSummary `json:"summary"`
	CycleBucket int64                       `json:"cycle_bucket"`
	KiloBytes   int64                       `json:"kilo_bytes"`
	Total       int64                       `json:"total_computation_units"`
}

// Rows prices the full sample cross-product: {small,large} cycles ×
// {small,large} notes consumed × {small,large} notes created ×
// {0, P2ID, large} per-note public size. The public note byte size scales
// with the created-note count; the account delta is held at zero, matching
// the fee review worksheet this table originates from.
func Rows() ([]Row, error) {
	cycleSamples := []int64{TxCyclesSmall, TxCyclesLarge}
	noteSamples := []int64{NumNotesSmall, NumNotesLarge}
	noteSizeSamples := []int64{0, P2IDNoteSize, NoteSizeLarge}

	rows := make([]Row, 0, len(cycleSamples)*len(noteSamples)*len(noteSamples)*len(noteSizeSamples))
	for _, cycles := range cycleSamples {
		for _, consumed := range noteSamples {
			for _, created := range noteSamples {
				for _, noteSize := range noteSizeSamples {
					m := feemodel.TransactionMetrics{
						NumCycles:                  cycles,
						NumNotesConsumed:           consumed,
						NumNotesCreated:            created,
						CreatedPublicNotesByteSize: created * noteSize,
					}
					summary, err := m.CalculateComputationUnits()
					if err != nil {
						return nil, err
					}
					rows = append(rows, Row{
						Metrics:     m,
						Summary:     summary,
						CycleBucket: m.CycleBucket(),
						KiloBytes:   m.KiloBytes(),
						Total:       summary.TotalComputationUnits(),
					})
				}
			}
		}
	}
	return rows, nil
}
