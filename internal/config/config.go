package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/mphapi"
)

// Config holds all runtime configuration for an mphprice run.
type Config struct {
	APIKey     string
	UseTestAPI bool
	BaseURL    string // overrides the prod/test URL selection when set
	FilePath   string // input claims or rate sheet JSON
	DSN        string // Postgres connection string for the load command
	LogFormat  string // "text" or "json"
	Verbose    bool

	Price mphapi.PriceConfig
}

// yamlPriceConfig is the on-disk YAML structure for pricing options. It
// mirrors mphapi.PriceConfig so the library type carries no YAML concerns.
type yamlPriceConfig struct {
	IsCommercial                        bool    `yaml:"is_commercial"`
	DisableCostBasedReimbursement       bool    `yaml:"disable_cost_based_reimbursement"`
	UseCommercialSyntheticForNotAllowed bool    `yaml:"use_commercial_synthetic_for_not_allowed"`
	UseDRGFromGrouper                   bool    `yaml:"use_drg_from_grouper"`
	UseBestDRGPrice                     bool    `yaml:"use_best_drg_price"`
	OverrideThreshold                   float64 `yaml:"override_threshold"`
	IncludeEdits                        bool    `yaml:"include_edits"`
}

// LoadPriceConfig reads a YAML pricing options file and merges its values
// into Config.Price.
func (c *Config) LoadPriceConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read price config: %w", err)
	}
	var yc yamlPriceConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse price config: %w", err)
	}
	c.Price = mphapi.PriceConfig{
		IsCommercial:                        yc.IsCommercial,
		DisableCostBasedReimbursement:       yc.DisableCostBasedReimbursement,
		UseCommercialSyntheticForNotAllowed: yc.UseCommercialSyntheticForNotAllowed,
		UseDRGFromGrouper:                   yc.UseDRGFromGrouper,
		UseBestDRGPrice:                     yc.UseBestDRGPrice,
		OverrideThreshold:                   yc.OverrideThreshold,
		IncludeEdits:                        yc.IncludeEdits,
	}
	if yc.OverrideThreshold < 0 {
		return fmt.Errorf("override_threshold must not be negative, got %v", yc.OverrideThreshold)
	}
	return nil
}

// Validate checks required fields and returns an error if the config is
// invalid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("--api-key or API_KEY is required")
	}
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both the base fields and the DSN needed by the
// load command.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}

// NewClient builds the pricing client described by the config.
func (c *Config) NewClient() *mphapi.Client {
	var opts []mphapi.Option
	if c.UseTestAPI {
		opts = append(opts, mphapi.WithTestAPI())
	}
	if c.BaseURL != "" {
		opts = append(opts, mphapi.WithBaseURL(c.BaseURL))
	}
	return mphapi.New(c.APIKey, opts...)
}
