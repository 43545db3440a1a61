package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func vendorsCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List the vendor roster",
		Example: `  # Full roster
  intakectl vendors

  # Resolve a name fragment
  intakectl vendors --match "ms. chen"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListVendors(context.Background(), query)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(list)
			}

			if query != "" {
				if list.Match == "" {
					fmt.Printf("No match for %q\n", query)
				} else {
					fmt.Printf("%q resolves to %s\n", query, list.Match)
				}
				return nil
			}

			for _, v := range list.Vendors {
				fmt.Println(v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "match", "", "name fragment to resolve")

	return cmd
}
