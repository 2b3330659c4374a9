// Package main provides the CLI entry point for OSLens.
package main

import (
	"os"

	"github.com/buildsim-labs/oslens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
