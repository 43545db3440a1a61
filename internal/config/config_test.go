package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
llm:
  backend: openai
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "intake", cfg.Database.Name)
				assert.Equal(t, "openai", cfg.LLM.Backend)
				assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "2024-10", cfg.Shopify.APIVersion)
				assert.Equal(t, 2.0, cfg.Shopify.RateLimit.PerSecond)
				assert.Equal(t, 4, cfg.Shopify.RateLimit.Burst)
				assert.Equal(t, "openai", cfg.LLM.Backend)
				assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
				assert.Equal(t, 5*time.Minute, cfg.Vendors.CacheTTL)
				assert.Equal(t, time.Hour, cfg.Vendors.RefreshInterval)
				assert.Equal(t, 60.0, cfg.Intake.DefaultPayoutPct)
				assert.Equal(t, "Street Commerce", cfg.Intake.DefaultVendor)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
  password: ${TEST_DB_PASSWORD}
`,
			envVars: map[string]string{"TEST_DB_PASSWORD": "hunter2"},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "hunter2", cfg.Database.Password)
			},
		},
		{
			name: "missing database host",
			yaml: `
database:
  name: intake
  user: intake
`,
			wantErr: "database.host is required",
		},
		{
			name: "anthropic backend requires model",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
llm:
  backend: anthropic
`,
			wantErr: "llm.anthropic.model is required",
		},
		{
			name: "ollama backend requires endpoint",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
llm:
  backend: ollama
`,
			wantErr: "llm.ollama.endpoint is required",
		},
		{
			name: "unknown llm backend",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
llm:
  backend: bard
`,
			wantErr: "llm.backend must be one of",
		},
		{
			name: "payout pct out of range",
			yaml: `
database:
  host: localhost
  name: intake
  user: intake
intake:
  default_payout_pct: 130
`,
			wantErr: "default_payout_pct must be within [0,100]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host: "db", Port: 5432, Name: "intake",
		User: "svc", Password: "pw", SSLMode: "disable",
	}
	assert.Equal(
		t,
		"host=db port=5432 dbname=intake user=svc password=pw sslmode=disable",
		d.DSN(),
	)
}
