// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/dotandev/cucalc/internal/errors"
	"github.com/dotandev/cucalc/internal/feemodel"
	"github.com/dotandev/cucalc/internal/terminal"
)

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // isolate from any real config file

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetEstimateFlags() {
	cyclesFlag = 0
	notesConsumedFlag = 0
	notesCreatedFlag = 0
	publicNoteBytesFlag = 0
	accountDeltaBytesFlag = 0
	FormatFlag = ""
}

func TestEstimate_TextOutput(t *testing.T) {
	t.Cleanup(resetEstimateFlags)

	out, err := execute(t, "estimate", "--no-color",
		"--cycles", "65536",
		"--notes-consumed", "5",
		"--notes-created", "5",
	)
	if err != nil {
		t.Fatalf("estimate failed: %v\n%s", err, out)
	}

	for _, want := range []string{"8_000 units", "150 units", "250 units", "8_400 units"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEstimate_JSONOutput(t *testing.T) {
	t.Cleanup(resetEstimateFlags)

	out, err := execute(t, "estimate", "--format", "json",
		"--cycles", "1048576",
		"--notes-consumed", "250",
		"--notes-created", "250",
		"--public-note-bytes", "325000",
	)
	if err != nil {
		t.Fatalf("estimate failed: %v\n%s", err, out)
	}

	for _, want := range []string{
		`"cycle_bucket": 20`,
		`"kilo_bytes": 325`,
		`"total_computation_units": 34875`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEstimate_MarkdownOutput(t *testing.T) {
	t.Cleanup(resetEstimateFlags)

	out, err := execute(t, "estimate", "--format", "markdown",
		"--cycles", "65536",
		"--notes-consumed", "5",
		"--notes-created", "5",
	)
	if err != nil {
		t.Fatalf("estimate failed: %v\n%s", err, out)
	}

	if !strings.Contains(out, "| Cycle Bucket") {
		t.Errorf("expected markdown header row:\n%s", out)
	}
	if !strings.Contains(out, "16 (8_000)") {
		t.Errorf("expected bucket cell:\n%s", out)
	}
}

func TestEstimate_RejectsZeroCycles(t *testing.T) {
	t.Cleanup(resetEstimateFlags)

	_, err := execute(t, "estimate", "--cycles", "0")
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEstimate_RejectsNegativeNotes(t *testing.T) {
	t.Cleanup(resetEstimateFlags)

	_, err := execute(t, "estimate", "--cycles", "1024", "--notes-consumed", "-3")
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEstimate_RejectsUnknownFormat(t *testing.T) {
	t.Cleanup(resetEstimateFlags)

	_, err := execute(t, "estimate", "--cycles", "1024", "--format", "csv")
	if !stderrors.Is(err, errors.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestPrintDomainWarnings(t *testing.T) {
	mock := terminal.NewMockRenderer()
	prev := renderer
	renderer = mock
	t.Cleanup(func() { renderer = prev })

	printDomainWarnings(feemodel.TransactionMetrics{
		NumCycles:        512, // below 2^10
		NumNotesConsumed: 2000,
	})

	out := mock.AllOutput()
	if !strings.Contains(out, "outside the calibrated domain") {
		t.Errorf("expected cycle domain warning, got %q", out)
	}
	if !strings.Contains(out, "exceeds the calibrated maximum") {
		t.Errorf("expected note count warning, got %q", out)
	}
}

func TestPrintDomainWarnings_SilentInDomain(t *testing.T) {
	mock := terminal.NewMockRenderer()
	prev := renderer
	renderer = mock
	t.Cleanup(func() { renderer = prev })

	printDomainWarnings(feemodel.TransactionMetrics{
		NumCycles:        1 << 16,
		NumNotesConsumed: 5,
		NumNotesCreated:  5,
	})

	if out := mock.AllOutput(); out != "" {
		t.Errorf("expected no warnings, got %q", out)
	}
}
