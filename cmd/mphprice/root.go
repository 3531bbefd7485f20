package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mphapi"
	"github.com/gyeh/mphapi/internal/config"
)

var cfg config.Config

var priceConfigPath string

var rootCmd = &cobra.Command{
	Use:   "mphprice",
	Short: "Price healthcare claims through the My Price Health API",
	Long:  "Submits HCFA/UB-04 claims and rate sheets to the My Price Health pricing API and prints, stores, or exports the priced results.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.APIKey, "api-key", os.Getenv("API_KEY"), "My Price Health API key (or set API_KEY)")
	pf.BoolVar(&cfg.UseTestAPI, "test", false, "Use the api-test environment")
	pf.StringVar(&cfg.BaseURL, "base-url", "", "Override the API base URL (takes precedence over --test)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
}

// loadPriceConfig merges the optional YAML pricing options file into cfg.
func loadPriceConfig() error {
	if priceConfigPath == "" {
		return nil
	}
	return cfg.LoadPriceConfig(priceConfigPath)
}

// readClaims decodes a JSON file holding either a single claim object or an
// array of claims.
func readClaims(path string) ([]mphapi.Claim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claims file: %w", err)
	}
	var claims []mphapi.Claim
	if err := json.Unmarshal(data, &claims); err == nil {
		return claims, nil
	}
	var claim mphapi.Claim
	if err := json.Unmarshal(data, &claim); err != nil {
		return nil, fmt.Errorf("parse claims file %s: %w", path, err)
	}
	return []mphapi.Claim{claim}, nil
}

// readRateSheets decodes a JSON file holding one rate sheet or an array.
func readRateSheets(path string) ([]mphapi.RateSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate sheet file: %w", err)
	}
	var sheets []mphapi.RateSheet
	if err := json.Unmarshal(data, &sheets); err == nil {
		return sheets, nil
	}
	var sheet mphapi.RateSheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parse rate sheet file %s: %w", path, err)
	}
	return []mphapi.RateSheet{sheet}, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
