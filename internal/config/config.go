// Package config handles application configuration
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"duedash/internal/utils"
)

//go:embed config.sample.yaml
var sampleConfig string

// GetSampleConfig returns the embedded sample configuration content
func GetSampleConfig() string {
	return sampleConfig
}

// Default values applied when a setting is absent from the config file.
const (
	DefaultFeedURL         = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQxNrV687aUqrPHpPxy8oVNjUvilP2Nt76FI6CByIOmShtve6BnsB_JUb317Mb86faVkB0ulWPNof-J/pub?gid=0&single=true&output=csv"
	DefaultProxyURL        = "https://api.allorigins.win/raw?url=%s"
	DefaultRefreshSeconds  = 120
	DefaultTimezone        = "America/Tijuana"
	DefaultDiscountPercent = 5
	DefaultBillingEmail    = "billing@example.com"
)

// FeedConfig holds feed retrieval settings
type FeedConfig struct {
	URL            string `yaml:"url"`
	ProxyURL       string `yaml:"proxy_url"` // template with %s for the encoded feed URL
	RefreshSeconds int    `yaml:"refresh_seconds"`
}

// InvoiceConfig holds invoice request settings
type InvoiceConfig struct {
	DiscountPercent *float64 `yaml:"discount_percent"` // percentage applied to task cost (default: 5)
	BillingEmail    string   `yaml:"billing_email"`
}

// UIConfig holds user interface settings
type UIConfig struct {
	ShowSummary *bool `yaml:"show_summary"` // summary strip above the cards (default: true)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Config represents the application configuration
type Config struct {
	Feed     FeedConfig    `yaml:"feed"`
	Timezone string        `yaml:"timezone"`
	Invoice  InvoiceConfig `yaml:"invoice"`
	UI       UIConfig      `yaml:"ui"`
	Logging  LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			URL:            DefaultFeedURL,
			ProxyURL:       DefaultProxyURL,
			RefreshSeconds: DefaultRefreshSeconds,
		},
		Timezone: DefaultTimezone,
		Invoice: InvoiceConfig{
			BillingEmail: DefaultBillingEmail,
		},
	}
}

// Load loads configuration from the specified path, or the default XDG path
// if empty. If the config file doesn't exist, it creates one with defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = filepath.Join(GetConfigDir(), "config.yaml")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in config file: %w", err)
	}

	// Apply defaults for unset fields
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = DefaultFeedURL
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.Invoice.BillingEmail == "" {
		cfg.Invoice.BillingEmail = DefaultBillingEmail
	}

	return cfg, nil
}

// save writes the configuration to the specified path
func (c *Config) save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Use the embedded sample config which includes all documentation and comments
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := utils.ValidateFeedURL(c.Feed.URL); err != nil {
		return err
	}
	if err := utils.ValidateRefreshSeconds(c.GetRefreshSeconds()); err != nil {
		return err
	}
	if err := utils.ValidateTimezone(c.Timezone); err != nil {
		return err
	}
	if err := utils.ValidateDiscountPercent(c.GetDiscountPercent()); err != nil {
		return err
	}
	return nil
}

// GetRefreshSeconds returns the refresh interval in seconds.
// Returns 120 (default) if not configured.
func (c *Config) GetRefreshSeconds() int {
	if c.Feed.RefreshSeconds <= 0 {
		return DefaultRefreshSeconds
	}
	return c.Feed.RefreshSeconds
}

// GetRefreshInterval returns the refresh interval as a time.Duration.
func (c *Config) GetRefreshInterval() time.Duration {
	return time.Duration(c.GetRefreshSeconds()) * time.Second
}

// GetProxyURL returns the proxy URL template.
// Returns the default CORS proxy wrapper if not configured.
func (c *Config) GetProxyURL() string {
	if c.Feed.ProxyURL == "" {
		return DefaultProxyURL
	}
	return c.Feed.ProxyURL
}

// GetDiscountPercent returns the invoice discount percentage.
// Returns 5 (default) if not configured.
func (c *Config) GetDiscountPercent() float64 {
	if c.Invoice.DiscountPercent == nil {
		return DefaultDiscountPercent
	}
	return *c.Invoice.DiscountPercent
}

// GetLocation returns the display timezone as a time.Location.
// Falls back to UTC if the configured name cannot be loaded.
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsSummaryEnabled returns true if the summary strip should be shown.
// Returns true (default) if not configured.
func (c *Config) IsSummaryEnabled() bool {
	if c.UI.ShowSummary == nil {
		return true
	}
	return *c.UI.ShowSummary
}

// IsVerbose returns true if verbose logging is enabled in config.
func (c *Config) IsVerbose() bool {
	return c.Logging.Verbose
}

// getXDGDir returns a directory path following XDG spec.
// envVar is the XDG environment variable (e.g., "XDG_CONFIG_HOME").
// fallbackPath is the relative path from home (e.g., ".config").
func getXDGDir(envVar, fallbackPath string) string {
	if xdgDir := os.Getenv(envVar); xdgDir != "" {
		return filepath.Join(xdgDir, "duedash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", fallbackPath, "duedash")
	}
	return filepath.Join(home, fallbackPath, "duedash")
}

// GetConfigDir returns the configuration directory following XDG spec
func GetConfigDir() string {
	return getXDGDir("XDG_CONFIG_HOME", ".config")
}

// GetCacheDir returns the cache directory following XDG spec
func GetCacheDir() string {
	return getXDGDir("XDG_CACHE_HOME", ".cache")
}
