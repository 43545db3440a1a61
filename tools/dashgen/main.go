// Package main generates Grafana dashboards and Prometheus rule files
// for the intake service deployment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/streetcommerce/intake/tools/dashgen/dashboards"
	"github.com/streetcommerce/intake/tools/dashgen/rules"
	"github.com/streetcommerce/intake/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	if result := validate.Dashboard(dash, KnownMetrics); !result.Ok() {
		return fmt.Errorf("dashboard validation failed: %v", result.Errors)
	}

	recording := rules.RecordingRules()
	if result := validate.Rules(recording, KnownMetrics); !result.Ok() {
		return fmt.Errorf("recording rule validation failed: %v", result.Errors)
	}

	alerts := rules.AlertRules()
	if result := validate.Rules(alerts, KnownMetrics); !result.Ok() {
		return fmt.Errorf("alert rule validation failed: %v", result.Errors)
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling dashboard: %w", err)
		}
		data = append(data, '\n')
		path := filepath.Join(cfg.OutputDir, "grafana", "data", "intake-overview.json")
		if err := writeArtifact(path, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if cfg.RulesEnabled {
		for _, artifact := range []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"intake-recording-rules.yaml", recording},
			{"intake-alerts.yaml", alerts},
		} {
			data, err := yaml.Marshal(artifact.cr)
			if err != nil {
				return fmt.Errorf("marshaling %s: %w", artifact.name, err)
			}
			data = append([]byte(generatedHeader), data...)
			path := filepath.Join(cfg.OutputDir, "prometheus", artifact.name)
			if err := writeArtifact(path, data); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
	}

	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
