package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vendorfund-dev/vendorfund/internal/pricing"
)

// FileName is the config file at the fund dir root.
const FileName = "vendorfund.yaml"

// Config represents the top-level vendorfund.yaml configuration.
type Config struct {
	Fund     FundConfig     `yaml:"fund"`
	Provider ProviderConfig `yaml:"provider"`
	// Policy overrides the named profile's pricing table when set.
	Policy *pricing.Policy `yaml:"policy,omitempty"`
	Git    GitConfig       `yaml:"git"`
}

// FundConfig identifies the fund and its payout currency.
type FundConfig struct {
	Name string `yaml:"name"`
	// Currency is passed through to the payment provider unmodified.
	Currency string `yaml:"currency"`
	// Profile names the pricing policy table ("demo" or "rupee").
	Profile string `yaml:"profile"`
}

// ProviderConfig holds payment provider connection settings.
// Credentials normally come from the environment, not the file.
type ProviderConfig struct {
	BaseURL      string `yaml:"base_url,omitempty"`
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	// StrictSuccess requires an explicit success signal from the
	// provider instead of assuming success on ambiguous responses.
	StrictSuccess bool `yaml:"strict_success"`
}

// GitConfig controls git integration for the fund dir.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a vendorfund.yaml file from disk, then applies environment
// variable overrides for provider settings.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if v := os.Getenv("PAYMAN_CLIENT_ID"); v != "" {
		cfg.Provider.ClientID = v
	}
	if v := os.Getenv("PAYMAN_CLIENT_SECRET"); v != "" {
		cfg.Provider.ClientSecret = v
	}
	if v := os.Getenv("PAYMAN_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}

	if cfg.Fund.Currency == "" {
		cfg.Fund.Currency = "TSD"
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// PricingPolicy resolves the effective pricing policy: the inline
// table when present, otherwise the named profile.
func (c *Config) PricingPolicy() pricing.Policy {
	if c.Policy != nil {
		return *c.Policy
	}
	return pricing.ProfileByName(c.Fund.Profile)
}

// Default returns a Config with sensible defaults for a new fund.
func Default(fundName string) *Config {
	return &Config{
		Fund: FundConfig{
			Name:     fundName,
			Currency: "TSD",
			Profile:  "demo",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Vendorfund",
			AuthorEmail: "fund@vendorfund.dev",
		},
	}
}
