package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/mphapi/internal/exitcode"
	"github.com/gyeh/mphapi/internal/export"
	"github.com/gyeh/mphapi/internal/logging"
	"github.com/gyeh/mphapi/internal/store"
)

var parquetOut string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Estimate claims and load the results into Postgres",
	Long:  "Estimates every claim in the input file, bulk-loads the priced lines into Postgres via COPY, and optionally exports them to a Parquet file.",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claims JSON file (required)")
	f.StringVar(&priceConfigPath, "price-config", "", "Path to YAML pricing options file")
	f.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	f.StringVar(&parquetOut, "parquet", "", "Also write priced lines to this Parquet file")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
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

	runID := uuid.New()

	pool, err := store.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	if err := store.EnsureSchema(ctx, pool); err != nil {
		log.Error().Err(err).Msg("schema setup failed")
		os.Exit(exitcode.WriteError)
	}
	rows, err := store.SaveRun(ctx, pool, log, runID, cfg.FilePath, resp.Results)
	if err != nil {
		log.Error().Err(err).Msg("saving pricing run failed")
		os.Exit(exitcode.WriteError)
	}

	if parquetOut != "" {
		n, err := export.Write(parquetOut, runID.String(), resp.Results)
		if err != nil {
			log.Error().Err(err).Msg("parquet export failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Str("path", parquetOut).Int64("rows", n).Msg("parquet export written")
	}

	fmt.Printf("Run %s: %d claims estimated, %d rows loaded", runID, resp.SuccessCount, rows)
	if resp.ErrorCount > 0 {
		fmt.Printf(" (%d claims failed)", resp.ErrorCount)
	}
	fmt.Println()
	if resp.ErrorCount > 0 {
		os.Exit(exitcode.PartialFailure)
	}
	return nil
}
