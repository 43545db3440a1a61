package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/streetcommerce/intake/internal/api/client"
	domain "github.com/streetcommerce/intake/pkg/types"
)

func itemsCmd() *cobra.Command {
	itemsRoot := &cobra.Command{
		Use:   "items",
		Short: "Manage inventory items",
	}

	itemsRoot.AddCommand(
		itemsListCmd(),
		itemsGetCmd(),
		itemsCreateCmd(),
		itemsPublishCmd(),
	)

	return itemsRoot
}

func itemsListCmd() *cobra.Command {
	var (
		vendor    string
		location  string
		published string
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items with optional filters",
		Example: `  # List all items
  intakectl items list

  # Unpushed items at one store
  intakectl items list --published false --location "DuPont Store"

  # Sort by price with pagination
  intakectl items list --order-by price --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListItems(context.Background(), &apiclient.ItemFilter{
				Vendor:    vendor,
				Location:  location,
				Published: published,
				Limit:     limit,
				Offset:    offset,
				OrderBy:   orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			fmt.Printf("Showing %d of %d items\n\n", len(resp.Items), resp.Total)
			return printItemsTable(resp.Items)
		},
	}
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor filter")
	cmd.Flags().StringVar(&location, "location", "", "store location filter")
	cmd.Flags().StringVar(&published, "published", "", "catalog push filter (true, false)")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (created_at, price)")

	return cmd
}

func itemsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show item details",
		Example: `  intakectl items get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			item, err := c.GetItem(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(item)
			}

			return printItemDetail(item)
		},
	}
}

func itemsCreateCmd() *cobra.Command {
	var (
		sku        string
		brand      string
		category   string
		condition  string
		priceCents int64
		location   string
		vendor     string
		tags       []string
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an inventory item",
		Example: `  intakectl items create "Rick Owens Pony Hair Ramone Sneakers" \
    --price-cents 90000 --vendor "Street Commerce" --location "DuPont Store" \
    --tag "size_US 12" --tag condition_9`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			item := &domain.Item{
				Title:     args[0],
				SKU:       sku,
				Brand:     brand,
				Category:  category,
				Condition: condition,
				Location:  location,
				Vendor:    vendor,
				Tags:      tags,
			}
			if priceCents > 0 {
				item.PriceCents = &priceCents
			}

			c := newClient()
			created, err := c.CreateItem(context.Background(), item)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(created)
			}

			fmt.Println("Created item", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&sku, "sku", "", "SKU")
	cmd.Flags().StringVar(&brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&category, "category", "", "category path")
	cmd.Flags().StringVar(&condition, "condition", "", "condition score")
	cmd.Flags().Int64Var(&priceCents, "price-cents", 0, "asking price in cents")
	cmd.Flags().StringVar(&location, "location", "", "store location")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag (repeatable)")

	return cmd
}

func itemsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "publish <id>",
		Short:   "Push an item to the catalog as a draft product",
		Example: `  intakectl items publish abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.PublishItem(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Created %s product %d\n", result.Status, result.ProductID)
			return nil
		},
	}
}
