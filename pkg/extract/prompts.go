package extract

import (
	"bytes"
	"fmt"
	"text/template"
)

// SystemPrompt pins the backend to machine-readable answers.
const SystemPrompt = "Return JSON only. No extra text."

// intakeTmpl is the intake extraction prompt template.
const intakeTmpl = `You convert a resale shop's free-form intake note into structured product fields.
Respond ONLY with a JSON object matching the schema below.
If a field cannot be determined, use an empty string "".
Never invent values that are not present in the note.

Rules:
- brand: the maker of the item (e.g. "Nike", "Rick Owens"). Empty if not stated.
- itemName: the item's name without the brand (e.g. "Air Max 90", "Ramones").
- categoryPath: a " > " separated category path ending in the most specific
  sub-category (e.g. "Apparel > Shoes > Sneakers").
- shopifyDescription: a short factual product description drawn from the note.
  Do not mention prices, condition scores, store locations, or sizing.
- size: the size exactly as written in the note (e.g. "12", "IT 43", "M").
- condition: the condition score out of 10 as written (e.g. "9", "8.5").
  Phrases like "9/10" mean condition 9. Empty if no condition is given.
- cost: what the shop paid for the item, digits only (e.g. "300").
- price: the intended selling price, digits only.
- location: "dupont" or "charlotte" if the note names a store, else "".
- vendorSource: the person or business the item came from, as written.
- vendor: same as vendorSource unless the note clearly distinguishes them.
- consignmentPayoutPct: the consignor's percentage if the note states a
  consignment split (e.g. "70/30 split" means 70). Empty if not consignment.
- intakeCost: what was paid at intake if different from cost, else "".

Example note:
"Nike Air Max 90, size 11, bought for 40 selling for 120, 8/10 condition"

Example answer:
{"brand":"Nike","itemName":"Air Max 90","categoryPath":"Apparel > Shoes > Sneakers","shopifyDescription":"","size":"11","condition":"8","cost":"40","price":"120","location":"","vendorSource":"","vendor":"","consignmentPayoutPct":"","intakeCost":"40"}

Intake note:
{{.RawInput}}`

// PromptData holds the template variables for the intake prompt.
type PromptData struct {
	RawInput string
}

var intakeTemplate = template.Must(template.New("intake").Parse(intakeTmpl))

// RenderIntakePrompt renders the intake extraction prompt for a raw note.
func RenderIntakePrompt(rawInput string) (string, error) {
	var buf bytes.Buffer
	if err := intakeTemplate.Execute(&buf, PromptData{RawInput: rawInput}); err != nil {
		return "", fmt.Errorf("rendering intake prompt: %w", err)
	}
	return buf.String(), nil
}
