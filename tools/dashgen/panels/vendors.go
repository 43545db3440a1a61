package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VendorLookupRate returns a timeseries panel showing vendor directory
// lookups broken down by outcome.
func VendorLookupRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Vendor Lookups").
		Description("Vendor directory lookups per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(intake_vendor_lookups_total{job="intake"}[5m])) by (outcome)`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// VendorCacheRefreshes returns a timeseries panel showing roster cache
// refreshes over the past hour.
func VendorCacheRefreshes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Roster Refreshes (1h)").
		Description("Vendor roster cache refreshes in the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(intake_vendor_cache_refreshes_total{job="intake"}[1h])`,
			"refreshes", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
