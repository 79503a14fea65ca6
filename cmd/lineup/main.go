// Package main provides the entry point for the lineup CLI.
package main

import (
	"os"

	"github.com/katalvlaran/lineup/cmd/lineup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
