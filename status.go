package mphapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ClaimStatus records where a claim sits in the external repricing workflow,
// together with the pricing payload to persist at that step. A ClaimStatus
// is sent once per transition and never mutated after sending; each send
// appends a new status record on the server, so the call is not idempotent.
type ClaimStatus struct {
	Step      string    `json:"step"`
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
	Pricing   *Pricing  `json:"pricing,omitempty"`
}

// WorkflowStatus is a known (step, status) pair in the repricing workflow.
// The set of valid pairs and their ordering is owned by the remote service;
// this layer passes unknown step/status strings through unchanged so new
// workflow states never require a client upgrade.
type WorkflowStatus struct {
	Step   string
	Status string
}

// Known workflow statuses, in workflow order.
var (
	StatusNew                     = WorkflowStatus{Step: "new", Status: "new"}
	StatusPendingProviderMatching = WorkflowStatus{Step: "provider matching", Status: "pending provider matching"}
	StatusProviderMatched         = WorkflowStatus{Step: "provider matching", Status: "provider matched"}
	StatusPendingRepricing        = WorkflowStatus{Step: "repricing", Status: "pending repricing"}
	StatusRepriced                = WorkflowStatus{Step: "repricing", Status: "repriced"}
	StatusComplete                = WorkflowStatus{Step: "complete", Status: "complete"}
)

// AllWorkflowStatuses lists the known workflow statuses in canonical order.
var AllWorkflowStatuses = []WorkflowStatus{
	StatusNew,
	StatusPendingProviderMatching,
	StatusProviderMatched,
	StatusPendingRepricing,
	StatusRepriced,
	StatusComplete,
}

// WorkflowStatusByName returns the known WorkflowStatus with the given
// status name, or ok=false when the name is not a known status.
func WorkflowStatusByName(status string) (WorkflowStatus, bool) {
	for _, ws := range AllWorkflowStatuses {
		if ws.Status == status {
			return ws, true
		}
	}
	return WorkflowStatus{}, false
}

// ClaimStatusFor builds a ClaimStatus at the given workflow position.
func ClaimStatusFor(ws WorkflowStatus) ClaimStatus {
	return ClaimStatus{Step: ws.Step, Status: ws.Status}
}

// CredentialsProvider supplies bearer tokens for the tenant application.
// How tokens are acquired and refreshed is the provider's concern; the
// status client only attaches them.
type CredentialsProvider interface {
	Token(ctx context.Context) (string, error)
}

// StatusClient posts claim status transitions to a tenant application
// (e.g. https://yourcompany.metl.health). It is separate from Client because
// the status endpoint lives on the tenant, not the pricing API, and
// authenticates with a bearer token instead of an API key.
type StatusClient struct {
	appURL string
	creds  CredentialsProvider
	hc     *http.Client
}

// StatusOption customizes a StatusClient.
type StatusOption func(*StatusClient)

// WithStatusHTTPClient replaces the default http.Client.
func WithStatusHTTPClient(hc *http.Client) StatusOption {
	return func(s *StatusClient) { s.hc = hc }
}

// NewStatusClient creates a StatusClient for the tenant at appURL.
func NewStatusClient(appURL string, creds CredentialsProvider, opts ...StatusOption) *StatusClient {
	s := &StatusClient{
		appURL: appURL,
		creds:  creds,
		hc:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InsertClaimStatus appends a status record for claimID. A server-side
// rejection (for example, the claim or a referenced line item does not
// exist) is returned as a *ResponseError; any other error means the tenant
// could not be reached or answered with something unintelligible.
func (s *StatusClient) InsertClaimStatus(ctx context.Context, claimID string, status ClaimStatus) error {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquire credentials: %w", err)
	}

	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("encode claim status: %w", err)
	}
	path := s.appURL + "/api/v1/claims/" + url.PathEscape(claimID) + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := s.hc.Do(req)
	if err != nil {
		return fmt.Errorf("insert claim status: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read claim status response: %w", err)
	}

	// The success variant is Response<void>: no result payload to decode.
	// Only the error shape matters here.
	var raw struct {
		Error *ResponseError `json:"error"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil && res.StatusCode/100 != 2 {
			return fmt.Errorf("http status %d: %w", res.StatusCode, &MalformedEnvelopeError{Payload: data})
		}
	}
	if raw.Error != nil {
		return raw.Error
	}
	if res.StatusCode/100 != 2 {
		return fmt.Errorf("http status %d: %w", res.StatusCode, &MalformedEnvelopeError{Payload: data})
	}
	return nil
}
