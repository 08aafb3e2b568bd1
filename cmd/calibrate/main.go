// Package main provides the calibrate CLI.
package main

import (
	"os"

	"github.com/katalvlaran/calibrate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
