package mphapi

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResponseSuccess(t *testing.T) {
	payload := `{"result": {"claim_id": "abc", "medicare_amount": 1250.5}, "status_code": 200}`

	var resp Response[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("expected a result")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error variant: %v", resp.Error)
	}
	if resp.Result.ClaimID != "abc" || resp.Result.MedicareAmount != 1250.5 {
		t.Errorf("result not carried through: %+v", resp.Result)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status_code = %d, want 200", resp.StatusCode)
	}
	if resp.Err() != nil {
		t.Errorf("Err() = %v on success", resp.Err())
	}
}

func TestResponseFailure(t *testing.T) {
	payload := `{"error": {"title": "X", "detail": "Y"}, "status_code": 400}`

	var resp Response[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result != nil {
		t.Fatal("unexpected success variant")
	}
	if resp.Error == nil {
		t.Fatal("expected an error")
	}
	if resp.Error.Title != "X" || resp.Error.Detail != "Y" {
		t.Errorf("error fields not carried through: %+v", resp.Error)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status_code = %d, want 400", resp.StatusCode)
	}
	var respErr *ResponseError
	if !errors.As(resp.Err(), &respErr) {
		t.Errorf("Err() should expose *ResponseError, got %T", resp.Err())
	}
}

func TestResponseMalformed(t *testing.T) {
	for _, payload := range []string{
		`{"status_code": 200}`,
		`{"unexpected": true}`,
		`[1, 2, 3]`,
	} {
		var resp Response[Pricing]
		err := json.Unmarshal([]byte(payload), &resp)
		if err == nil {
			t.Errorf("payload %q: expected decode failure", payload)
			continue
		}
		var malformed *MalformedEnvelopeError
		if !errors.As(err, &malformed) {
			t.Errorf("payload %q: error kind = %T, want *MalformedEnvelopeError", payload, err)
			continue
		}
		if len(malformed.Payload) == 0 {
			t.Errorf("payload %q: raw payload not preserved", payload)
		}
	}
}

// A payload carrying both keys decodes as success: the success shape is
// tried first, and that ordering is part of the contract.
func TestResponseSuccessShapeWins(t *testing.T) {
	payload := `{"result": {"claim_id": "abc"}, "error": {"title": "X", "detail": "Y"}, "status_code": 200}`

	var resp Response[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result == nil || resp.Error != nil {
		t.Errorf("expected the success variant, got result=%v error=%v", resp.Result, resp.Error)
	}
}

func TestResponseExtraFieldsIgnored(t *testing.T) {
	payload := `{"result": {"claim_id": "abc"}, "status_code": 200, "trace_id": "t-1"}`

	var resp Response[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result == nil || resp.Result.ClaimID != "abc" {
		t.Errorf("result lost in the presence of extra fields: %+v", resp.Result)
	}
}

func TestResponsesSuccess(t *testing.T) {
	payload := `{
		"results": [{"claim_id": "a"}, {"claim_id": "b"}],
		"success_count": 2,
		"error_count": 1,
		"status_code": 200
	}`

	var resp Responses[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected failure variant: %v", resp.Error)
	}
	if len(resp.Results) != resp.SuccessCount {
		t.Errorf("len(results) = %d, want success_count = %d", len(resp.Results), resp.SuccessCount)
	}
	if resp.ErrorCount != 1 {
		t.Errorf("error_count = %d, want 1", resp.ErrorCount)
	}
	if resp.Results[0].ClaimID != "a" || resp.Results[1].ClaimID != "b" {
		t.Errorf("results not carried through: %+v", resp.Results)
	}
	// Partial failure is data, not an error.
	if resp.Err() != nil {
		t.Errorf("Err() = %v for a partial batch", resp.Err())
	}
}

func TestResponsesEmptyResults(t *testing.T) {
	payload := `{"results": [], "success_count": 0, "error_count": 3, "status_code": 200}`

	var resp Responses[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != nil {
		t.Fatal("empty results must still decode as the success variant")
	}
	if len(resp.Results) != 0 || resp.ErrorCount != 3 {
		t.Errorf("got results=%d error_count=%d", len(resp.Results), resp.ErrorCount)
	}
}

func TestResponsesFailure(t *testing.T) {
	payload := `{"error": {"title": "bad batch", "detail": "no claims supplied"}, "status_code": 422}`

	var resp Responses[Pricing]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected the failure variant")
	}
	if got := resp.Err().Error(); got != "bad batch: no claims supplied" {
		t.Errorf("Err() = %q", got)
	}
}

func TestResponsesMalformed(t *testing.T) {
	var resp Responses[Pricing]
	err := json.Unmarshal([]byte(`{"status_code": 200}`), &resp)
	var malformed *MalformedEnvelopeError
	if !errors.As(err, &malformed) {
		t.Fatalf("error kind = %T, want *MalformedEnvelopeError", err)
	}
}

func TestResponseMarshalRoundTrip(t *testing.T) {
	orig := Response[Pricing]{
		Result:     &Pricing{ClaimID: "abc", MedicareAmount: 100},
		StatusCode: 200,
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Response[Pricing]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Result == nil || back.Result.ClaimID != "abc" || back.StatusCode != 200 {
		t.Errorf("round trip lost data: %+v", back)
	}
}
