package api

import (
	"fmt"

	"github.com/NodEm9/myflix-client/internal/common"
)

// RequestError normalizes any HTTP-layer failure into one reportable error.
// StatusCode is 0 for transport failures (the request never got a response).
// It unwraps to common.ErrRequestFailed so callers can match the whole class
// with errors.Is without caring about the specific server semantics.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error {
	return common.ErrRequestFailed
}
