package mphapi

import (
	"encoding/json"
	"fmt"
)

// ResponseError supplies detailed error information when an entire request
// or an item in a response fails. It is based on the generalized error
// handling recommendation in IETF RFC 7807.
type ResponseError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// MalformedEnvelopeError reports a payload that matched neither the success
// nor the failure shape of a response envelope. It carries the raw payload
// for diagnostics.
type MalformedEnvelopeError struct {
	Payload []byte
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed response envelope: %s", truncate(e.Payload, 256))
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

// Response is the standardized single-result envelope used by all pricing
// endpoints. Exactly one of Result and Error is set after decoding.
//
// No tag field is transmitted; the variant is inferred structurally, in a
// fixed order: a payload with a top-level "result" key decodes as success, a
// payload with a top-level "error" key decodes as failure, anything else
// fails with *MalformedEnvelopeError. A payload carrying both keys decodes
// as success because the success shape is tried first.
type Response[T any] struct {
	Result     *T
	Error      *ResponseError
	StatusCode int
}

// Err returns the application error carried by the envelope, or nil on
// success.
func (r *Response[T]) Err() error {
	if r.Error != nil {
		return r.Error
	}
	return nil
}

// responseJSON is the wire shape shared by both envelope variants. Key
// presence, not value, drives discrimination, so raw messages are kept.
type responseJSON struct {
	Result     json.RawMessage `json:"result"`
	Error      json.RawMessage `json:"error"`
	StatusCode int             `json:"status_code"`
}

func (r *Response[T]) UnmarshalJSON(data []byte) error {
	var raw responseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return &MalformedEnvelopeError{Payload: data}
	}
	r.Result, r.Error, r.StatusCode = nil, nil, raw.StatusCode

	if raw.Result != nil {
		var result T
		if err := json.Unmarshal(raw.Result, &result); err != nil {
			return fmt.Errorf("decode envelope result: %w", err)
		}
		r.Result = &result
		return nil
	}
	if raw.Error != nil {
		var respErr ResponseError
		if err := json.Unmarshal(raw.Error, &respErr); err != nil {
			return fmt.Errorf("decode envelope error: %w", err)
		}
		r.Error = &respErr
		return nil
	}
	return &MalformedEnvelopeError{Payload: data}
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			Error      *ResponseError `json:"error"`
			StatusCode int            `json:"status_code"`
		}{r.Error, r.StatusCode})
	}
	return json.Marshal(struct {
		Result     *T  `json:"result"`
		StatusCode int `json:"status_code"`
	}{r.Result, r.StatusCode})
}

// Responses is the standardized batch envelope. On success, Results holds
// only the items that succeeded; SuccessCount+ErrorCount equals the number
// of inputs. The protocol carries no per-item error attribution, so a caller
// cannot tell from the envelope alone which input failed when ErrorCount is
// greater than zero; partial failure is data to check, not an error return.
//
// Discrimination follows the same fixed order as Response: the success shape
// (a top-level "results" key) is tried before the failure shape ("error").
type Responses[T any] struct {
	Results      []T
	SuccessCount int
	ErrorCount   int
	Error        *ResponseError
	StatusCode   int
}

// Err returns the application error carried by the envelope, or nil when
// the batch was accepted (even if some items failed).
func (r *Responses[T]) Err() error {
	if r.Error != nil {
		return r.Error
	}
	return nil
}

type responsesJSON struct {
	Results      json.RawMessage `json:"results"`
	SuccessCount int             `json:"success_count"`
	ErrorCount   int             `json:"error_count"`
	Error        json.RawMessage `json:"error"`
	StatusCode   int             `json:"status_code"`
}

func (r *Responses[T]) UnmarshalJSON(data []byte) error {
	var raw responsesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return &MalformedEnvelopeError{Payload: data}
	}
	*r = Responses[T]{StatusCode: raw.StatusCode}

	if raw.Results != nil {
		if err := json.Unmarshal(raw.Results, &r.Results); err != nil {
			return fmt.Errorf("decode envelope results: %w", err)
		}
		r.SuccessCount = raw.SuccessCount
		r.ErrorCount = raw.ErrorCount
		return nil
	}
	if raw.Error != nil {
		var respErr ResponseError
		if err := json.Unmarshal(raw.Error, &respErr); err != nil {
			return fmt.Errorf("decode envelope error: %w", err)
		}
		r.Error = &respErr
		return nil
	}
	return &MalformedEnvelopeError{Payload: data}
}

func (r Responses[T]) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			Error      *ResponseError `json:"error"`
			StatusCode int            `json:"status_code"`
		}{r.Error, r.StatusCode})
	}
	results := r.Results
	if results == nil {
		results = []T{}
	}
	return json.Marshal(struct {
		Results      []T `json:"results"`
		SuccessCount int `json:"success_count"`
		ErrorCount   int `json:"error_count"`
		StatusCode   int `json:"status_code"`
	}{results, r.SuccessCount, r.ErrorCount, r.StatusCode})
}
