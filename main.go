// =============================================================================
// dtb2x - Main Entry Point
// =============================================================================
//
// This is the main entry point for the dtb2x CLI application. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   dtb2x convert       - Convert a DTB file to a CSV or XLSX table
//   dtb2x version       - Display the application version
//
// ARCHITECTURE:
//   cmd/         : CLI command definitions (Cobra)
//   internal/    : core conversion logic (not for external import)
//   pkg/         : shared utilities
//
// =============================================================================

package main

import (
	"github.com/mvondracek/dtb2x/cmd"
)

func main() {
	cmd.Execute()
}
