package azopenai

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/openai/openai-go"
)

// ErrorKind classifies a failed completion call.
type ErrorKind string

const (
	// ErrAuthentication covers invalid or missing credentials (401, 403).
	ErrAuthentication ErrorKind = "authentication"
	// ErrRateLimit covers quota exhaustion (429).
	ErrRateLimit ErrorKind = "rate_limit"
	// ErrServiceUnavailable covers server faults, timeouts, and network errors.
	ErrServiceUnavailable ErrorKind = "service_unavailable"
	// ErrInvalidRequest covers malformed payloads and context-length overruns.
	ErrInvalidRequest ErrorKind = "invalid_request"
)

// APIError is a classified failure from the completion service.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("azopenai: %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("azopenai: %s: %v", e.Kind, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsRetryable reports whether the error is transient (rate limit or service
// fault). The harness makes a single attempt per run regardless; callers use
// this only to label the failure.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == ErrRateLimit || apiErr.Kind == ErrServiceUnavailable
}

// classify maps SDK and transport errors onto the APIError taxonomy.
func classify(err error) error {
	var sdkErr *openai.Error
	if errors.As(err, &sdkErr) {
		return &APIError{
			Kind:       kindForStatus(sdkErr.StatusCode),
			StatusCode: sdkErr.StatusCode,
			Err:        err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: ErrServiceUnavailable, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &APIError{Kind: ErrServiceUnavailable, Err: err}
	}

	return err
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return ErrAuthentication
	case status == 429:
		return ErrRateLimit
	case status == 408 || status >= 500:
		return ErrServiceUnavailable
	default:
		// Remaining 4xx indicate a payload-construction defect, including
		// context-length overruns (400 with a length finish reason).
		return ErrInvalidRequest
	}
}
