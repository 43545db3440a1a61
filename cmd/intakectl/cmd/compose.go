package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/streetcommerce/intake/internal/api/client"
)

func composeCmd() *cobra.Command {
	var (
		brand        string
		categoryPath string
		size         string
		condition    string
		location     string
	)

	cmd := &cobra.Command{
		Use:   "compose <item name>",
		Short: "Compose a catalog title and tags",
		Long: "Deterministically composes the product title and tag set for an\n" +
			"item. No model call is involved.",
		Example: `  intakectl compose "Pony Hair Ramone Sneakers" --brand "Rick Owens" \
    --category "Men's > Shoes > Sneakers" --size "US 12" --condition 9`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Compose(context.Background(), &apiclient.ComposeRequest{
				Brand:        brand,
				ItemName:     strings.Join(args, " "),
				CategoryPath: categoryPath,
				Size:         size,
				Condition:    condition,
				Location:     location,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Println("Title:", result.Title)
			fmt.Println("Tags: ", strings.Join(result.Tags, ", "))
			if result.ProductType != "" {
				fmt.Println("Type: ", result.ProductType)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&categoryPath, "category", "", "category path")
	cmd.Flags().StringVar(&size, "size", "", "US size token")
	cmd.Flags().StringVar(&condition, "condition", "", "condition score")
	cmd.Flags().StringVar(&location, "location", "", "store location")

	return cmd
}
