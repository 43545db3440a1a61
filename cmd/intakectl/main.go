// Package main is the entry point for the intakectl CLI.
package main

import (
	"github.com/streetcommerce/intake/cmd/intakectl/cmd"
)

func main() {
	cmd.Execute()
}
