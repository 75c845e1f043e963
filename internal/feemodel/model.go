// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

// Package feemodel prices a transaction's measured resource usage in
// abstract computation units. The model is piecewise linear: notes and data
// bytes are billed at flat per-item and per-kilobyte rates, while execution
// cycles are first coarsened into power-of-two buckets so that small
// fluctuations in cycle count do not move the price.
package feemodel

import (
	"fmt"
	"math/bits"

	"github.com/dotandev/cucalc/internal/errors"
)

// ─── Unit cost rates ──────────────────────────────────────────────────────────

const (
	// UnitsPerCycleBucket is the cost per cycle bucket index, where the
	// bucket is ceil(log2(num_cycles)). For the expected cycle domain the
	// bucket lands in 10..29.
	UnitsPerCycleBucket int64 = 500

	// UnitsPerCreatedNote is the cost per note created.
	UnitsPerCreatedNote int64 = 50

	// UnitsPerConsumedNote is the cost per note consumed.
	UnitsPerConsumedNote int64 = 30

	// UnitsPerKiloByte is the cost per started kilobyte of public data
	// (created public notes plus the public account delta).
	UnitsPerKiloByte int64 = 15
)

// bytesPerKiloByte is the billing granularity for public data.
const bytesPerKiloByte int64 = 1000

// ─── Validation ───────────────────────────────────────────────────────────────

// Validate rejects metrics the model cannot price. NumCycles must be at
// least 1 because the cycle bucket is a logarithm; NumCycles == 1 itself is
// accepted and prices cycles at zero (bucket 0). Every other field must be
// non-negative.
func (m TransactionMetrics) Validate() error {
	if m.NumCycles < 1 {
		return errors.WrapInvalidInput(fmt.Sprintf("num_cycles must be >= 1, got %d", m.NumCycles))
	}
	fields := []struct {
		name  string
		value int64
	}{
		{"num_notes_consumed", m.NumNotesConsumed},
		{"num_notes_created", m.NumNotesCreated},
		{"created_public_notes_byte_size", m.CreatedPublicNotesByteSize},
		{"public_account_delta_byte_size", m.PublicAccountDeltaByteSize},
	}
	for _, f := range fields {
		if f.value < 0 {
			return errors.WrapInvalidInput(fmt.Sprintf("%s must be non-negative, got %d", f.name, f.value))
		}
	}
	return nil
}

// ─── Derived quantities ───────────────────────────────────────────────────────

// CycleBucket returns ceil(log2(NumCycles)), the pricing tier of the cycle
// count. Computed with integer bit arithmetic so powers of two are exact.
// Returns 0 for NumCycles < 1; callers that need rejection instead go
// through Validate or CalculateComputationUnits.
func (m TransactionMetrics) CycleBucket() int64 {
	if m.NumCycles < 1 {
		return 0
	}
	return int64(bits.Len64(uint64(m.NumCycles - 1)))
}

// KiloBytes returns the combined public data size in whole kilobytes, any
// started kilobyte rounded up.
func (m TransactionMetrics) KiloBytes() int64 {
	total := m.CreatedPublicNotesByteSize + m.PublicAccountDeltaByteSize
	if total <= 0 {
		return 0
	}
	return (total + bytesPerKiloByte - 1) / bytesPerKiloByte
}

// ─── Pricing ──────────────────────────────────────────────────────────────────

// CalculateComputationUnits prices the metrics and returns the per-resource
// breakdown. The computation is deterministic and has no side effects; the
// only error path is malformed input.
func (m TransactionMetrics) CalculateComputationUnits() (ComputationSummary, error) {
	if err := m.Validate(); err != nil {
		return ComputationSummary{}, err
	}
	return ComputationSummary{
		CycleUnits:         m.CycleBucket() * UnitsPerCycleBucket,
		NotesConsumedUnits: m.NumNotesConsumed * UnitsPerConsumedNote,
		NotesCreatedUnits:  m.NumNotesCreated * UnitsPerCreatedNote,
		DataUnits:          m.KiloBytes() * UnitsPerKiloByte,
	}, nil
}

// TotalComputationUnits returns the sum of the four unit fields. Always
// recomputed so the total can never go stale relative to the breakdown.
func (s ComputationSummary) TotalComputationUnits() int64 {
	return s.CycleUnits + s.NotesConsumedUnits + s.NotesCreatedUnits + s.DataUnits
}

// String returns a human-readable one-line summary.
func (s ComputationSummary) String() string {
	return fmt.Sprintf(
		"ComputationSummary{Cycles: %d, NotesConsumed: %d, NotesCreated: %d, Data: %d, Total: %d}",
		s.CycleUnits, s.NotesConsumedUnits, s.NotesCreatedUnits, s.DataUnits,
		s.TotalComputationUnits(),
	)
}
