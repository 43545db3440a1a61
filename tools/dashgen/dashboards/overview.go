// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/streetcommerce/intake/tools/dashgen/panels"
)

// BuildOverview constructs the Intake Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Intake Overview").
		Uid("intake-overview").
		Tags([]string{"intake", "streetcommerce"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.NotificationFailures()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Extraction.
	b.WithRow(dashboard.NewRowBuilder("Extraction").
		WithPanel(panels.ExtractionDuration()).
		WithPanel(panels.ExtractionFailures()))

	// Row 4: Vendors.
	b.WithRow(dashboard.NewRowBuilder("Vendors").
		WithPanel(panels.VendorLookupRate()).
		WithPanel(panels.VendorCacheRefreshes()))

	// Row 5: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.CatalogPushRate()).
		WithPanel(panels.CatalogPushFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
