package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport failures: no response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches 401 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// ResponseError is returned for every response with status >= 400.
type ResponseError struct {
	StatusCode int
	// Message is the server-provided message, if one could be extracted.
	Message string
	Body    []byte
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *ResponseError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
