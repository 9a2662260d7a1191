// Package main is the entry point for the olelo CLI.
package main

import (
	"os"

	"github.com/f3rmion/olelo/cmd/olelo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
