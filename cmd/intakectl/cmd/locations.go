package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List store and catalog locations",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListLocations(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(list)
			}

			fmt.Println("Store labels:")
			for _, name := range list.Known {
				fmt.Println("  " + name)
			}

			fmt.Println("\nCatalog locations:")
			tw := newTabWriter(os.Stdout)
			tw.writef("ID\tNAME\tACTIVE\n")
			for _, loc := range list.Catalog {
				tw.writef("%d\t%s\t%v\n", loc.ID, loc.Name, loc.Active)
			}
			return tw.finish()
		},
	}
}
