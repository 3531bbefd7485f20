package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/mphapi"
	"github.com/gyeh/mphapi/internal/credentials"
	"github.com/gyeh/mphapi/internal/exitcode"
	"github.com/gyeh/mphapi/internal/logging"
)

var (
	statusClaimID   string
	statusName      string
	statusStep      string
	statusUpdatedBy string
	appURL          string
	appAPIKey       string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Record a claim status transition on the tenant application",
	RunE:  runStatus,
}

func init() {
	f := statusCmd.Flags()
	f.StringVar(&statusClaimID, "claim-id", "", "Claim ID to update (required)")
	f.StringVar(&statusName, "status", "", "Status name, e.g. \"pending provider matching\" (required)")
	f.StringVar(&statusStep, "step", "", "Workflow step; derived from --status when it is a known status")
	f.StringVar(&statusUpdatedBy, "updated-by", "", "Who is recording the transition")
	f.StringVar(&appURL, "app-url", os.Getenv("APP_URL"), "Tenant application URL, e.g. https://yourcompany.metl.health (or set APP_URL)")
	f.StringVar(&appAPIKey, "app-api-key", os.Getenv("APP_API_KEY"), "Tenant app API key (or set APP_API_KEY)")
	_ = statusCmd.MarkFlagRequired("claim-id")
	_ = statusCmd.MarkFlagRequired("status")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	ctx := context.Background()

	if appURL == "" || appAPIKey == "" {
		log.Error().Msg("--app-url and --app-api-key are required")
		os.Exit(exitcode.UsageError)
	}

	status := mphapi.ClaimStatus{
		Step:      statusStep,
		Status:    statusName,
		UpdatedBy: statusUpdatedBy,
		UpdatedAt: time.Now().UTC(),
	}
	// Unknown statuses pass through as given; the tenant owns the valid set.
	if ws, ok := mphapi.WorkflowStatusByName(statusName); ok && statusStep == "" {
		status.Step = ws.Step
	}

	creds := credentials.New(appAPIKey, appURL)
	client := mphapi.NewStatusClient(appURL, creds)

	if err := client.InsertClaimStatus(ctx, statusClaimID, status); err != nil {
		var respErr *mphapi.ResponseError
		if errors.As(err, &respErr) {
			log.Error().
				Str("title", respErr.Title).
				Str("detail", respErr.Detail).
				Msg("tenant rejected the status update")
			os.Exit(exitcode.APIError)
		}
		log.Error().Err(err).Msg("status update failed")
		os.Exit(exitcode.RequestError)
	}

	log.Info().
		Str("claim_id", statusClaimID).
		Str("step", status.Step).
		Str("status", status.Status).
		Msg("claim status recorded")
	return nil
}
