package shopify

import (
	"strconv"
	"strings"

	"github.com/streetcommerce/intake/pkg/normalize"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// DraftFromRecord maps a normalized intake record onto a draft product
// payload. Title and tags are recomputed from the record so the catalog
// listing always matches the stored fields.
func DraftFromRecord(rec *domain.IntakeFields) DraftProduct {
	_, leaf := normalize.SplitCategoryPath(rec.CategoryPath)

	return DraftProduct{
		Title:       normalize.ComposeTitle(rec.Brand, rec.ItemName, leaf),
		BodyHTML:    bodyHTML(rec.ShopifyDescription),
		Vendor:      rec.Vendor,
		ProductType: leaf,
		Tags:        normalize.BuildTags(rec.Size, rec.Condition, rec.Location),
		Price:       rec.Price,
	}
}

// DraftFromItem maps a persisted inventory item onto a draft product
// payload, for publishing after the fact.
func DraftFromItem(item *domain.Item) DraftProduct {
	_, leaf := normalize.SplitCategoryPath(item.Category)

	p := DraftProduct{
		Title:       item.Title,
		BodyHTML:    bodyHTML(item.Notes),
		Vendor:      item.Vendor,
		ProductType: leaf,
		Tags:        item.Tags,
		SKU:         item.SKU,
	}
	if item.PriceCents != nil {
		p.Price = strconv.FormatFloat(float64(*item.PriceCents)/100, 'f', 2, 64)
	}
	return p
}

// bodyHTML turns plain description lines into minimal HTML paragraphs.
func bodyHTML(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}

	lines := strings.Split(description, "\n")
	var b strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(line)
		b.WriteString("</p>")
	}
	return b.String()
}
