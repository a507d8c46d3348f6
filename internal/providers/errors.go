package providers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound reports a manifest or season file that does not exist at the source.
	ErrNotFound = errors.New("season data not found")
	// ErrProviderUnavailable reports a provider that was never configured.
	ErrProviderUnavailable = errors.New("season provider unavailable")
)

// StatusError captures a non-success HTTP response from a season data host.
type StatusError struct {
	Provider   string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected status"
	}
	return fmt.Sprintf("%s: %s %s (status=%d)", e.Provider, msg, e.Path, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404 and 410 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && (e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone)
}

// Retryable reports whether the status is worth another attempt.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusRequestTimeout || e.StatusCode >= 500
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// DecodeError reports a manifest or season body that is not valid JSON for its shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsPermanent reports errors that another attempt cannot fix.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrProviderUnavailable) {
		return true
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return true
	}
	if statusErr, ok := AsStatusError(err); ok {
		return !statusErr.Retryable()
	}
	return false
}
