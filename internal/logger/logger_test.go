// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, false)
	t.Cleanup(func() { SetOutput(nil, false) })

	SetLevel(slog.LevelWarn)
	Logger.Info("should be filtered")
	Logger.Warn("should appear", "key", "value")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn line missing: %q", out)
	}
}
