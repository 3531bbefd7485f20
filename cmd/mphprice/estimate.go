package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mphapi/internal/exitcode"
	"github.com/gyeh/mphapi/internal/logging"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate claims in batch (one result per claim)",
	RunE:  runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claims JSON file (required)")
	f.StringVar(&priceConfigPath, "price-config", "", "Path to YAML pricing options file")
	_ = estimateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := loadPriceConfig(); err != nil {
		log.Error().Err(err).Msg("price config invalid")
		os.Exit(exitcode.UsageError)
	}

	claims, err := readClaims(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("could not read claims")
		os.Exit(exitcode.UsageError)
	}

	client := cfg.NewClient()
	resp, err := client.EstimateClaims(ctx, cfg.Price, claims...)
	if err != nil {
		log.Error().Err(err).Msg("estimate request failed")
		os.Exit(exitcode.RequestError)
	}
	if err := resp.Err(); err != nil {
		log.Error().Err(err).Int("status_code", resp.StatusCode).Msg("pricing service rejected the batch")
		os.Exit(exitcode.APIError)
	}

	if err := printJSON(resp.Results); err != nil {
		return err
	}
	if resp.ErrorCount > 0 {
		// The envelope does not say which inputs failed, only how many.
		log.Warn().
			Int("success_count", resp.SuccessCount).
			Int("error_count", resp.ErrorCount).
			Msg("some claims were not estimated")
		os.Exit(exitcode.PartialFailure)
	}
	return nil
}
