// Package validate checks generated dashboards and rules for PromQL
// syntax errors and references to metrics the service does not export.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	promparser "github.com/prometheus/prometheus/promql/parser"

	"github.com/streetcommerce/intake/tools/dashgen/rules"
)

// Result collects validation findings. Errors are broken expressions;
// Warnings are references to metric names outside the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) checkExpr(source, expr string, known map[string]bool) {
	node, err := promparser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", source, expr, err))
		return
	}

	promparser.Inspect(node, func(n promparser.Node, _ []promparser.Node) error {
		vs, ok := n.(*promparser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: unknown metric %q", source, vs.Name))
		}
		return nil
	})
}

// Dashboard validates every Prometheus target expression in the
// dashboard against the known metric set.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			checkPanel(&res, *p.Panel, known)
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				checkPanel(&res, inner, known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p dashboard.Panel, known map[string]bool) {
	title := "untitled panel"
	if p.Title != nil && *p.Title != "" {
		title = *p.Title
	}
	for _, target := range p.Targets {
		switch q := target.(type) {
		case prometheus.Dataquery:
			res.checkExpr("panel "+title, q.Expr, known)
		case *prometheus.Dataquery:
			res.checkExpr("panel "+title, q.Expr, known)
		}
	}
}

// Rules validates every rule expression in the PrometheusRule CR
// against the known metric set.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, group := range cr.Spec.Groups {
		for _, rule := range group.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			res.checkExpr("rule "+name, rule.Expr, known)
		}
	}
	return res
}
