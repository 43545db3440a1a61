package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/streetcommerce/intake/internal/api/client"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItemsTable(items []domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tVENDOR\tLOCATION\tPRICE\tPUSHED\n")
	for i := range items {
		price := "-"
		if items[i].PriceCents != nil {
			price = fmt.Sprintf("$%.2f", float64(*items[i].PriceCents)/100)
		}
		pushed := "no"
		if items[i].ProductID != nil {
			pushed = fmt.Sprintf("product %d", *items[i].ProductID)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			items[i].ID,
			truncate(items[i].Title, 40),
			items[i].Vendor,
			items[i].Location,
			price,
			pushed,
		)
	}
	return tw.finish()
}

func printItemDetail(item *domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", item.ID)
	tw.writef("Title:\t%s\n", item.Title)
	tw.writef("SKU:\t%s\n", item.SKU)
	tw.writef("Brand:\t%s\n", item.Brand)
	tw.writef("Category:\t%s\n", item.Category)
	tw.writef("Condition:\t%s\n", item.Condition)
	if item.PriceCents != nil {
		tw.writef("Price:\t$%.2f\n", float64(*item.PriceCents)/100)
	}
	tw.writef("Location:\t%s\n", item.Location)
	tw.writef("Vendor:\t%s\n", item.Vendor)
	if len(item.Tags) > 0 {
		tw.writef("Tags:\t%v\n", item.Tags)
	}
	if item.ProductID != nil {
		tw.writef("Product ID:\t%d\n", *item.ProductID)
	}
	return tw.finish()
}

func printParseResult(result *apiclient.ParseResult) error {
	tw := newTabWriter(os.Stdout)
	f := &result.Fields
	tw.writef("Brand:\t%s\n", f.Brand)
	tw.writef("Item:\t%s\n", f.ItemName)
	tw.writef("Category:\t%s\n", f.CategoryPath)
	tw.writef("Size:\t%s\n", f.Size)
	tw.writef("Condition:\t%s\n", f.Condition)
	tw.writef("Price:\t%s\n", f.Price)
	tw.writef("Location:\t%s\n", f.Location)
	tw.writef("Vendor:\t%s\n", f.Vendor)

	if f.IsConsignment {
		tw.writef("Consignment:\t%.0f%% to vendor\n", f.ConsignmentPayoutPct)
		tw.writef("Payout:\t$%.2f\n", result.Economics.VendorPayout)
		tw.writef("Store cut:\t$%.2f\n", result.Economics.StoreCut)
	} else {
		if f.IntakeCost != nil {
			tw.writef("Cost:\t$%.2f\n", *f.IntakeCost)
		}
		tw.writef("Profit:\t$%.2f\n", result.Economics.Profit)
		tw.writef("Margin:\t%.1f%%\n", result.Economics.MarginPct)
	}
	return tw.finish()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
