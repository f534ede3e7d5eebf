package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete desk configuration.
type Config struct {
	Account Account  `json:"account" yaml:"account"`
	Symbols []string `json:"symbols" yaml:"symbols"`
	Journal Journal  `json:"journal" yaml:"journal"`
	Quotes  Quotes   `json:"quotes" yaml:"quotes"`
}

// Account holds session initialization parameters. Currency is a display
// label only; all amounts are in that one currency.
type Account struct {
	Currency string  `json:"currency" yaml:"currency"`
	Cash     float64 `json:"cash" yaml:"cash"`
}

// Journal selects the fill audit backend.
type Journal struct {
	Type string `json:"type" yaml:"type"` // "sqlite", "csv" or "none"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Quotes configures the price source.
type Quotes struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"` // e.g. "10s"
}

// ParseTimeout converts the timeout string to a time.Duration; empty means zero.
func (q Quotes) ParseTimeout() (time.Duration, error) {
	if q.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(q.Timeout)
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Cash <= 0 {
		return fmt.Errorf("account.cash must be positive")
	}
	if len(c.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	for _, s := range c.Symbols {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("symbols must not be blank")
		}
	}
	switch c.Journal.Type {
	case "sqlite", "csv":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s journal", c.Journal.Type)
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv' or 'none'")
	}
	if _, err := c.Quotes.ParseTimeout(); err != nil {
		return fmt.Errorf("quotes.timeout: %w", err)
	}
	return nil
}

// Default returns the out-of-the-box desk: $10M cash and the five-symbol
// universe the desk has always traded.
func Default() *Config {
	return &Config{
		Account: Account{
			Currency: "USD",
			Cash:     10_000_000,
		},
		Symbols: []string{"AAPL", "AMZN", "MSFT", "INTC", "SNAP"},
		Journal: Journal{
			Type: "sqlite",
			Path: "./paperdesk.sqlite",
		},
		Quotes: Quotes{
			Timeout: "10s",
		},
	}
}
