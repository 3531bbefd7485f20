package mphapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	prodBaseURL = "https://api.myprice.health"
	testBaseURL = "https://api-test.myprice.health"

	apiKeyHeader = "x-api-key"
)

const (
	pathEstimateRateSheet = "/v1/medicare/estimate/rate-sheet"
	pathEstimateClaims    = "/v1/medicare/estimate/claims"
	pathPriceClaim        = "/v1/medicare/price/claim"
)

// Client calls the My Price Health pricing API. It is safe for concurrent
// use; it holds no mutable state between calls. It never retries and never
// caches: every method is a single synchronous request/decode round trip
// whose timeout and cancellation come from the caller's context and the
// underlying *http.Client.
//
// Methods return two distinct kinds of failure: a non-nil error means the
// service could not be reached or its response could not be decoded
// (*MalformedEnvelopeError for the latter), while a decoded envelope whose
// Err() is non-nil means the service itself rejected the request.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithTestAPI points the client at the test environment.
func WithTestAPI() Option {
	return func(c *Client) { c.baseURL = testBaseURL }
}

// WithBaseURL overrides the API base URL entirely.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a Client for the production API authenticated with apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: prodBaseURL,
		apiKey:  apiKey,
		hc:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Price prices one or more claims with full adjudication context.
//
// The endpoint returns a single envelope even when multiple claims are
// submitted; the server aggregates. That is a documented quirk of the
// service, not something this layer papers over.
func (c *Client) Price(ctx context.Context, config PriceConfig, claims ...Claim) (*Response[Pricing], error) {
	return receiveResponse[Pricing](ctx, c, pathPriceClaim, config.Headers(), claims)
}

// EstimateClaims estimates one or more claims, returning one Pricing per
// input claim correlated by claim ID.
func (c *Client) EstimateClaims(ctx context.Context, config PriceConfig, claims ...Claim) (*Responses[Pricing], error) {
	return receiveResponses[Pricing](ctx, c, pathEstimateClaims, config.Headers(), claims)
}

// EstimateRateSheet estimates rate sheets against the Medicare fee schedule.
// Pricing configuration does not apply to this endpoint.
func (c *Client) EstimateRateSheet(ctx context.Context, sheets ...RateSheet) (*Responses[Pricing], error) {
	return receiveResponses[Pricing](ctx, c, pathEstimateRateSheet, nil, sheets)
}

// receiveResponse posts body and decodes a single-result envelope.
func receiveResponse[T any](ctx context.Context, c *Client, path string, headers map[string]string, body any) (*Response[T], error) {
	data, httpStatus, err := c.post(ctx, path, headers, body)
	if err != nil {
		return nil, err
	}
	var resp Response[T]
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, decodeError(err, httpStatus)
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = httpStatus
	}
	return &resp, nil
}

// receiveResponses posts body and decodes a batch envelope.
func receiveResponses[T any](ctx context.Context, c *Client, path string, headers map[string]string, body any) (*Responses[T], error) {
	data, httpStatus, err := c.post(ctx, path, headers, body)
	if err != nil {
		return nil, err
	}
	var resp Responses[T]
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, decodeError(err, httpStatus)
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = httpStatus
	}
	return &resp, nil
}

// decodeError keeps *MalformedEnvelopeError inspectable via errors.As while
// attaching the HTTP status a non-2xx unparseable response came with.
func decodeError(err error, httpStatus int) error {
	var malformed *MalformedEnvelopeError
	if errors.As(err, &malformed) && httpStatus/100 != 2 {
		return fmt.Errorf("http status %d: %w", httpStatus, malformed)
	}
	return err
}

// post issues a JSON POST and returns the raw response body and HTTP status.
// Errors returned here are transport failures; envelope interpretation is
// the caller's job, because error envelopes arrive with non-2xx statuses.
func (c *Client) post(ctx context.Context, path string, headers map[string]string, body any) ([]byte, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("read response from %s: %w", path, err)
	}
	return data, res.StatusCode, nil
}
