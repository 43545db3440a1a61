package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	settingsRoot := &cobra.Command{
		Use:   "settings",
		Short: "Manage shop settings",
	}

	settingsRoot.AddCommand(
		settingsGetLocationCmd(),
		settingsSetLocationCmd(),
	)

	return settingsRoot
}

func settingsGetLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-location",
		Short: "Show the default fulfillment location",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			setting, err := c.GetDefaultLocation(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(setting)
			}

			if setting.DefaultLocationID == "" {
				fmt.Println("No default location set.")
			} else {
				fmt.Println("Default location:", setting.DefaultLocationID)
			}
			return nil
		},
	}
}

func settingsSetLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-default-location <location-id>",
		Short:   "Set the default fulfillment location",
		Example: `  intakectl settings set-default-location 70503661811`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetDefaultLocation(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Default location saved.")
			return nil
		},
	}
}
