// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package feemodel

// TransactionMetrics captures the measured resource usage of a single
// transaction. All fields are raw counts taken from execution; none of them
// are derived. A value is built once, passed to CalculateComputationUnits,
// and discarded.
type TransactionMetrics struct {
	// NumCycles is the execution cycle count. Expected domain 2^10..2^29.
	// Must be at least 1: the cycle bucket is a base-2 logarithm.
	NumCycles int64 `json:"num_cycles"`

	// NumNotesConsumed is the number of notes spent as inputs. Expected
	// domain 0..1024.
	NumNotesConsumed int64 `json:"num_notes_consumed"`

	// NumNotesCreated is the number of notes newly issued. Expected domain
	// 0..1024.
	NumNotesCreated int64 `json:"num_notes_created"`

	// CreatedPublicNotesByteSize is the combined serialized size of all
	// publicly visible created notes. Expected domain ~1000..~20000.
	//
	// Rough per-note breakdown:
	//   NoteHeader (serialized as only NoteMetadata) = 32
	//   NoteAssets   = 0..(255 * 32 = 8160)
	//   NoteScript   = ~1000..~10000
	//   NoteInputs   = 0..(1 + 255 * 8 = 2041)
	//   SerialNumber = 32
	CreatedPublicNotesByteSize int64 `json:"created_public_notes_byte_size"`

	// PublicAccountDeltaByteSize is the serialized size of the publicly
	// visible account state delta. Expected domain 0..2^15.
	PublicAccountDeltaByteSize int64 `json:"public_account_delta_byte_size"`
}

// ComputationSummary is the per-resource cost breakdown produced by the fee
// model. The total is never stored; TotalComputationUnits recomputes it from
// the current field values.
type ComputationSummary struct {
	// CycleUnits is the cost attributed to the execution cycle bucket.
	CycleUnits int64 `json:"cycle_units"`

	// NotesConsumedUnits is the cost attributed to consumed notes.
	NotesConsumedUnits int64 `json:"notes_consumed_units"`

	// NotesCreatedUnits is the cost attributed to created notes.
	NotesCreatedUnits int64 `json:"notes_created_units"`

	// DataUnits is the cost attributed to combined public note and account
	// delta byte size.
	DataUnits int64 `json:"data_units"`
}
