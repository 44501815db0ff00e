// Package main provides the safebite CLI application.
// safebite builds the ingredient taxonomy caches, serves the detection
// API and runs one-shot barcode scans.
package main

import (
	"os"
)

var (
	// Version is set by build flags.
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
