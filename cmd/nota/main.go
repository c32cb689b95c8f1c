// Package main is the entry point for the nota CLI tool.
package main

import (
	"os"

	"github.com/ndreas/nota/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
