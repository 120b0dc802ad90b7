package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Known data providers.
const (
	ProviderYahoo    = "yahoo"
	ProviderVsTrader = "vstrader"
	ProviderAlpaca   = "alpaca"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider  string `yaml:"provider"`
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
		Adjusted  *bool  `yaml:"adjusted"`
	} `yaml:"data_source"`
	Output struct {
		Dir        string   `yaml:"dir"`
		Format     string   `yaml:"format"`
		Viewer     string   `yaml:"viewer"`
		ViewerArgs []string `yaml:"viewer_args"`
	} `yaml:"output"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	Proxy       string        `yaml:"proxy"`
	LogFile     string        `yaml:"log_file"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HEDGE_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("VSTRADER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("VSTRADER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("ALPACA_SECRET_KEY"); v != "" {
		cfg.DataSource.APISecret = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("PLOT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("PLOT_VIEWER"); v != "" {
		cfg.Output.Viewer = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	// Defaults
	cfg.DataSource.Provider = strings.ToLower(strings.TrimSpace(cfg.DataSource.Provider))
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = ProviderYahoo
	}
	if cfg.DataSource.Adjusted == nil {
		adjusted := true
		cfg.DataSource.Adjusted = &adjusted
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "plots"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "png"
	}

	return cfg, nil
}

// Validate checks that the selected provider has what it needs.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case ProviderYahoo:
	case ProviderVsTrader:
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for provider %q", c.DataSource.Provider)
		}
	case ProviderAlpaca:
		if c.DataSource.APIKey == "" || c.DataSource.APISecret == "" {
			return fmt.Errorf("data_source.api_key and data_source.api_secret are required for provider %q", c.DataSource.Provider)
		}
	default:
		return fmt.Errorf("data_source.provider %q is not one of yahoo, vstrader, alpaca", c.DataSource.Provider)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative")
	}
	switch c.Output.Format {
	case "png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps":
	default:
		return fmt.Errorf("output.format %q is not supported", c.Output.Format)
	}
	return nil
}
