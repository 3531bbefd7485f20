package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mphapi/internal/exitcode"
	"github.com/gyeh/mphapi/internal/logging"
)

var rateSheetCmd = &cobra.Command{
	Use:   "rate-sheet",
	Short: "Estimate rate sheets against the Medicare fee schedule",
	RunE:  runRateSheet,
}

func init() {
	f := rateSheetCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to rate sheet JSON file (required)")
	_ = rateSheetCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(rateSheetCmd)
}

func runRateSheet(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sheets, err := readRateSheets(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("could not read rate sheets")
		os.Exit(exitcode.UsageError)
	}

	client := cfg.NewClient()
	resp, err := client.EstimateRateSheet(ctx, sheets...)
	if err != nil {
		log.Error().Err(err).Msg("rate sheet request failed")
		os.Exit(exitcode.RequestError)
	}
	if err := resp.Err(); err != nil {
		log.Error().Err(err).Int("status_code", resp.StatusCode).Msg("pricing service rejected the rate sheets")
		os.Exit(exitcode.APIError)
	}

	if err := printJSON(resp.Results); err != nil {
		return err
	}
	if resp.ErrorCount > 0 {
		log.Warn().
			Int("success_count", resp.SuccessCount).
			Int("error_count", resp.ErrorCount).
			Msg("some rate sheets were not estimated")
		os.Exit(exitcode.PartialFailure)
	}
	return nil
}
