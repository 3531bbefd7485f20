// Package mphapi is a client for the My Price Health pricing API. It submits
// HCFA/UB-04 claims and rate sheets for Medicare-based pricing, decodes the
// standardized response envelopes, and records claim status transitions in
// the external repricing workflow.
//
// The package computes nothing itself: it encodes requests faithfully,
// decodes responses losslessly, and leaves pricing, code validation, and
// retry policy to the remote service and the caller.
package mphapi
