package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "intake-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "intake-recording",
					Rules: []Rule{
						{
							Record: "intake:http_requests:rate5m",
							Expr:   `sum(rate(intake_http_requests_total[5m]))`,
						},
						{
							Record: "intake:http_errors:rate5m",
							Expr:   `sum(rate(intake_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "intake:extraction_failures:rate5m",
							Expr:   `sum(rate(intake_extraction_failures_total[5m]))`,
						},
						{
							Record: "intake:vendor_lookups:rate5m",
							Expr:   `sum(rate(intake_vendor_lookups_total[5m]))`,
						},
						{
							Record: "intake:catalog_pushes:rate5m",
							Expr:   `rate(intake_catalog_pushes_total[5m])`,
						},
						{
							Record: "intake:catalog_push_failures:rate5m",
							Expr:   `rate(intake_catalog_push_failures_total[5m])`,
						},
					},
				},
			},
		},
	}
}
