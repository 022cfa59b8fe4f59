// Package main is the entry point for the calllog CLI/TUI.
package main

import (
	"os"

	"github.com/watchfire-io/calllog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
