package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// intake service operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "intake-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "intake-alerts",
					Rules: []Rule{
						{
							Alert: "IntakeDown",
							Expr:  `absent(up{job="intake"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Intake service is down",
								"description": "The intake job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "IntakeReadinessDown",
							Expr:  `intake_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Intake readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "IntakeHighErrorRate",
							Expr:  `intake:http_errors:rate5m / intake:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the intake service",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "IntakeExtractionFailures",
							Expr:  `intake:extraction_failures:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "LLM extraction failure rate is elevated",
								"description": "Extraction failures are occurring at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "IntakeVendorRosterStale",
							Expr:  `increase(intake_vendor_cache_refreshes_total[2h]) == 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Vendor roster has not refreshed",
								"description": "The vendor roster cache has not refreshed in over 2 hours. Consignment matching may be using stale data.",
							},
						},
						{
							Alert: "IntakeCatalogPushFailures",
							Expr:  `increase(intake_catalog_push_failures_total[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog push failures detected",
								"description": "One or more draft product pushes to Shopify have failed in the last 15 minutes.",
							},
						},
						{
							Alert: "IntakeNotificationFailures",
							Expr:  `increase(intake_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more item announcements (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
