// Package common defines shared sentinel errors used across client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks malformed input caught before any request is sent.
	ErrValidation = errors.New("validation error")

	// ErrNotAuthenticated is returned when an operation requiring a session
	// is invoked with none present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRequestFailed marks any HTTP-layer failure: transport error or
	// non-2xx response. See api.RequestError for the carried detail.
	ErrRequestFailed = errors.New("request failed")

	// ErrOperationInProgress is returned for a duplicate concurrent mutation
	// attempt on the same resource.
	ErrOperationInProgress = errors.New("operation already in progress")
)
