// Package main is the entry point for the intake server.
package main

import (
	"os"

	"github.com/streetcommerce/intake/cmd/intake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
