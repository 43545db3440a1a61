package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogPushRate returns a timeseries panel showing draft products
// pushed to the catalog per second.
func CatalogPushRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Pushes").
		Description("Draft products pushed to the catalog per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`intake:catalog_pushes:rate5m`, "pushes/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CatalogPushFailures returns a timeseries panel showing failed catalog
// pushes per second.
func CatalogPushFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Push Failures").
		Description("Failed catalog pushes per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`intake:catalog_push_failures:rate5m`, "failures/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
