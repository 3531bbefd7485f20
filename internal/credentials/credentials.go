// Package credentials acquires bearer tokens for the tenant application.
// The tenant fronts its claim workflow with a Google Identity Platform
// project, so a token is an anonymous sign-in against the identitytoolkit
// REST API, keyed by the tenant's app API key and restricted by referer.
package credentials

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultSignInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signUp"

// refreshSkew re-acquires a token this long before its recorded expiry so
// an in-flight request never carries a token that expires mid-call.
const refreshSkew = 30 * time.Second

// AppCredentials implements mphapi.CredentialsProvider. It caches the
// current ID token and refreshes it before expiry. Safe for concurrent use.
type AppCredentials struct {
	apiKey    string
	referer   string
	signInURL string
	hc        *http.Client
	now       func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// CredOption customizes AppCredentials.
type CredOption func(*AppCredentials)

// WithSignInURL overrides the identitytoolkit endpoint.
func WithSignInURL(u string) CredOption {
	return func(a *AppCredentials) { a.signInURL = u }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) CredOption {
	return func(a *AppCredentials) { a.hc = hc }
}

// New creates AppCredentials for the given app API key and referer.
func New(appAPIKey, appReferer string, opts ...CredOption) *AppCredentials {
	a := &AppCredentials{
		apiKey:    appAPIKey,
		referer:   appReferer,
		signInURL: defaultSignInURL,
		hc:        http.DefaultClient,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Token returns a currently valid bearer token, signing in again when the
// cached one is absent or within the refresh skew of expiring.
func (a *AppCredentials) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.now().Add(refreshSkew).Before(a.expiry) {
		return a.token, nil
	}

	token, expiry, err := a.signIn(ctx)
	if err != nil {
		return "", err
	}
	a.token = token
	a.expiry = expiry
	return token, nil
}

type signInResponse struct {
	IDToken   string `json:"idToken"`
	ExpiresIn string `json:"expiresIn"` // seconds, as a decimal string
}

func (a *AppCredentials) signIn(ctx context.Context) (string, time.Time, error) {
	body := bytes.NewReader([]byte(`{"returnSecureToken":true}`))
	u := a.signInURL + "?key=" + url.QueryEscape(a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", a.referer)

	res, err := a.hc.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign in: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read sign-in response: %w", err)
	}
	if res.StatusCode/100 != 2 {
		return "", time.Time{}, fmt.Errorf("sign in failed with status %d: %s", res.StatusCode, data)
	}

	var sr signInResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return "", time.Time{}, fmt.Errorf("parse sign-in response: %w", err)
	}
	if sr.IDToken == "" {
		return "", time.Time{}, fmt.Errorf("sign-in response carried no idToken")
	}
	return sr.IDToken, a.tokenExpiry(sr), nil
}

// tokenExpiry reads the exp claim from the ID token. The token is not
// verified here; the tenant verifies it on every request. The expiresIn
// field is the fallback when the token is not a parseable JWT.
func (a *AppCredentials) tokenExpiry(sr signInResponse) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(sr.IDToken, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	var seconds int64
	if _, err := fmt.Sscanf(sr.ExpiresIn, "%d", &seconds); err == nil && seconds > 0 {
		return a.now().Add(time.Duration(seconds) * time.Second)
	}
	return a.now().Add(30 * time.Minute)
}
