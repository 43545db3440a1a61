// Package config handles loading and validating the application
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Shopify       ShopifyConfig       `yaml:"shopify"`
	LLM           LLMConfig           `yaml:"llm"`
	Vendors       VendorsConfig       `yaml:"vendors"`
	Intake        IntakeConfig        `yaml:"intake"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ShopifyConfig defines Shopify Admin API settings.
type ShopifyConfig struct {
	ShopDomain string          `yaml:"shop_domain"`
	APIVersion string          `yaml:"api_version"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
	Timeout    time.Duration   `yaml:"timeout"`
}

// RateLimitConfig defines Admin API rate limiting settings. Shopify's
// REST bucket leaks at 2 requests per second.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// LLMConfig defines LLM backend settings.
type LLMConfig struct {
	Backend   string          `yaml:"backend"` // openai, anthropic, ollama
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	MaxTokens int             `yaml:"max_tokens"`
	Timeout   time.Duration   `yaml:"timeout"`
}

// OpenAIConfig defines OpenAI (or compatible endpoint) settings.
type OpenAIConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AnthropicConfig defines Anthropic API settings.
type AnthropicConfig struct {
	Model string `yaml:"model"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// VendorsConfig defines the vendor directory webapp settings.
type VendorsConfig struct {
	URL             string        `yaml:"url"`
	Key             string        `yaml:"key"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// IntakeConfig defines the normalization business policy.
type IntakeConfig struct {
	DefaultPayoutPct float64 `yaml:"default_payout_pct"`
	DefaultVendor    string  `yaml:"default_vendor"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment
// variable substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyShopifyDefaults(&cfg.Shopify)
	applyLLMDefaults(&cfg.LLM)
	applyVendorsDefaults(&cfg.Vendors)
	applyIntakeDefaults(&cfg.Intake)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyShopifyDefaults(s *ShopifyConfig) {
	if s.APIVersion == "" {
		s.APIVersion = "2024-10"
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 2.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 4
	}
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = "openai"
	}
	if l.OpenAI.Model == "" {
		l.OpenAI.Model = "gpt-4o-mini"
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 1024
	}
	if l.Timeout == 0 {
		l.Timeout = 60 * time.Second
	}
}

func applyVendorsDefaults(v *VendorsConfig) {
	if v.CacheTTL == 0 {
		v.CacheTTL = 5 * time.Minute
	}
	if v.RefreshInterval == 0 {
		v.RefreshInterval = time.Hour
	}
}

func applyIntakeDefaults(i *IntakeConfig) {
	if i.DefaultPayoutPct == 0 {
		i.DefaultPayoutPct = 60
	}
	if i.DefaultVendor == "" {
		i.DefaultVendor = "Street Commerce"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.LLM.Backend {
	case "openai":
		// endpoint defaults inside the backend, API key comes from env
	case "anthropic":
		if cfg.LLM.Anthropic.Model == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.anthropic.model is required when backend is anthropic"),
			)
		}
	case "ollama":
		if cfg.LLM.Ollama.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.ollama.endpoint is required when backend is ollama"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"llm.backend must be one of: openai, anthropic, ollama (got %q)",
				cfg.LLM.Backend,
			),
		)
	}

	if cfg.Intake.DefaultPayoutPct < 0 || cfg.Intake.DefaultPayoutPct > 100 {
		errs = append(
			errs,
			fmt.Errorf(
				"intake.default_payout_pct must be within [0,100] (got %v)",
				cfg.Intake.DefaultPayoutPct,
			),
		)
	}

	return errors.Join(errs...)
}
