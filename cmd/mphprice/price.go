package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/mphapi"
	"github.com/gyeh/mphapi/internal/exitcode"
	"github.com/gyeh/mphapi/internal/logging"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price claims with full adjudication context",
	RunE:  runPrice,
}

func init() {
	f := priceCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claims JSON file (required)")
	f.StringVar(&priceConfigPath, "price-config", "", "Path to YAML pricing options file")
	_ = priceCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
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
	log.Debug().Int("claims", len(claims)).Msg("pricing claims")

	resp, err := client.Price(ctx, cfg.Price, claims...)
	if err != nil {
		var malformed *mphapi.MalformedEnvelopeError
		if errors.As(err, &malformed) {
			log.Error().Err(err).Msg("unintelligible response from pricing service")
		} else {
			log.Error().Err(err).Msg("pricing request failed")
		}
		os.Exit(exitcode.RequestError)
	}
	if err := resp.Err(); err != nil {
		log.Error().Err(err).Int("status_code", resp.StatusCode).Msg("pricing service rejected the request")
		os.Exit(exitcode.APIError)
	}

	return printJSON(resp.Result)
}
