// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// ANSI SGR codes
const (
	sgrReset  = "\033[0m"
	sgrRed    = "\033[31m"
	sgrGreen  = "\033[32m"
	sgrYellow = "\033[33m"
	sgrCyan   = "\033[36m"
	sgrDim    = "\033[2m"
	sgrBold   = "\033[1m"
)

type ANSIRenderer struct {
	isTTY   bool
	ttyOnce sync.Once
}

func NewANSIRenderer() *ANSIRenderer {
	return &ANSIRenderer{}
}

func (r *ANSIRenderer) IsTTY() bool {
	r.ttyOnce.Do(func() {
		r.isTTY = r.checkTTY()
	})
	return r.isTTY
}

func (r *ANSIRenderer) checkTTY() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (r *ANSIRenderer) Print(a ...any) {
	fmt.Print(a...)
}

func (r *ANSIRenderer) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (r *ANSIRenderer) Println(a ...any) {
	fmt.Println(a...)
}

func (r *ANSIRenderer) Colorize(text, color string) string {
	if !r.IsTTY() {
		return text
	}
	var code string
	switch color {
	case "red":
		code = sgrRed
	case "green":
		code = sgrGreen
	case "yellow":
		code = sgrYellow
	case "cyan":
		code = sgrCyan
	case "dim":
		code = sgrDim
	case "bold":
		code = sgrBold
	default:
		return text
	}
	return code + text + sgrReset
}

func (r *ANSIRenderer) Success() string {
	if r.IsTTY() {
		return sgrGreen + "[OK]" + sgrReset
	}
	return "[OK]"
}

func (r *ANSIRenderer) Warning() string {
	if r.IsTTY() {
		return sgrYellow + "[!]" + sgrReset
	}
	return "[!]"
}

func (r *ANSIRenderer) Error() string {
	if r.IsTTY() {
		return sgrRed + "[X]" + sgrReset
	}
	return "[X]"
}
