// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package terminal

// Renderer defines the interface for terminal drawing and interaction.
type Renderer interface {
	Print(a ...any)
	Printf(format string, a ...any)
	Println(a ...any)
	Colorize(text, color string) string
	Success() string
	Warning() string
	Error() string
	IsTTY() bool
}
