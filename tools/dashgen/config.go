package main

import "errors"

// KnownMetrics is the set of metric names exported by the intake service
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"intake_http_request_duration_seconds": true,
	"intake_http_requests_total":           true,

	// Health metrics.
	"intake_healthz_up": true,
	"intake_readyz_up":  true,

	// Extraction metrics.
	"intake_extraction_duration_seconds": true,
	"intake_extraction_failures_total":   true,

	// Vendor directory metrics.
	"intake_vendor_lookups_total":         true,
	"intake_vendor_cache_refreshes_total": true,

	// Catalog push metrics.
	"intake_catalog_pushes_total":        true,
	"intake_catalog_push_failures_total": true,

	// Notification metrics.
	"intake_notification_failures_total": true,

	// Recording rules.
	"intake:http_requests:rate5m":         true,
	"intake:http_errors:rate5m":           true,
	"intake:extraction_failures:rate5m":   true,
	"intake:vendor_lookups:rate5m":        true,
	"intake:catalog_pushes:rate5m":        true,
	"intake:catalog_push_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
