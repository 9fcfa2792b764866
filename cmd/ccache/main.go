// Package main provides the ccache command-line interface: a
// change-detection cache for files, with check, sync, watch, and cache
// maintenance commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}
