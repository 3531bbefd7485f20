package mphapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticCreds struct {
	token string
	err   error
}

func (s staticCreds) Token(ctx context.Context) (string, error) {
	return s.token, s.err
}

func TestInsertClaimStatus(t *testing.T) {
	var gotPath, gotAuth string
	var gotStatus ClaimStatus

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotStatus); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"result": null, "status_code": 200}`))
	}))
	defer ts.Close()

	client := NewStatusClient(ts.URL, staticCreds{token: "id-token"})
	status := ClaimStatusFor(StatusPendingProviderMatching)
	status.UpdatedBy = "reviewer@example.com"

	if err := client.InsertClaimStatus(context.Background(), "1234567890", status); err != nil {
		t.Fatalf("InsertClaimStatus: %v", err)
	}
	if gotPath != "/api/v1/claims/1234567890/status" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer id-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotStatus.Step != "provider matching" || gotStatus.Status != "pending provider matching" {
		t.Errorf("status not transmitted faithfully: %+v", gotStatus)
	}
}

func TestInsertClaimStatusRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": {"title": "insert failed", "detail": "expected to insert 1 line item repricing rows but inserted 0"}, "status_code": 422}`))
	}))
	defer ts.Close()

	client := NewStatusClient(ts.URL, staticCreds{token: "id-token"})
	status := ClaimStatusFor(StatusRepriced)
	status.Pricing = &Pricing{
		ClaimID:  "no-such-claim",
		Services: []PricedService{{LineNumber: "6789"}},
	}

	err := client.InsertClaimStatus(context.Background(), "no-such-claim", status)
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error kind = %T, want *ResponseError", err)
	}
	if respErr.Detail != "expected to insert 1 line item repricing rows but inserted 0" {
		t.Errorf("detail = %q", respErr.Detail)
	}
}

func TestInsertClaimStatusCredentialsFailure(t *testing.T) {
	client := NewStatusClient("http://127.0.0.1:0", staticCreds{err: errors.New("sign in failed")})
	err := client.InsertClaimStatus(context.Background(), "x", ClaimStatus{Step: "new", Status: "new"})
	if err == nil {
		t.Fatal("expected an error when credentials cannot be acquired")
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		t.Errorf("credential failure misreported as an application error: %v", err)
	}
}

func TestInsertClaimStatusNonEnvelopeFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer ts.Close()

	client := NewStatusClient(ts.URL, staticCreds{token: "id-token"})
	err := client.InsertClaimStatus(context.Background(), "x", ClaimStatus{Step: "new", Status: "new"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var malformed *MalformedEnvelopeError
	if !errors.As(err, &malformed) {
		t.Fatalf("error kind = %T, want *MalformedEnvelopeError", err)
	}
}

// Unknown step/status strings are not rejected locally; the workflow's
// valid set is owned by the remote service.
func TestClaimStatusForwardCompatible(t *testing.T) {
	status := ClaimStatus{Step: "quantum review", Status: "pending entanglement"}
	data, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back ClaimStatus
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Step != status.Step || back.Status != status.Status {
		t.Errorf("round trip mangled unknown values: %+v", back)
	}
}

func TestWorkflowStatusByName(t *testing.T) {
	ws, ok := WorkflowStatusByName("pending provider matching")
	if !ok || ws != StatusPendingProviderMatching {
		t.Errorf("lookup = %+v, %v", ws, ok)
	}
	if _, ok := WorkflowStatusByName("bogus"); ok {
		t.Error("unexpected hit for unknown status")
	}
}
