// Package cmd implements the CLI commands for the intake server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Inventory intake service for consignment resale",
	Long: "An API-first service that turns free-text intake notes into normalized " +
		"inventory records via LLM extraction plus deterministic rules, and pushes " +
		"them into the Shopify catalog as draft products.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
