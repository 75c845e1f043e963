// Copyright 2025 Cucalc Users
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/dotandev/cucalc/internal/cmd"
)

// Build-time variables injected via -ldflags.
var version = "dev"

func main() {
	cmd.Version = version

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
