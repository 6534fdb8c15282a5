package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for API responses.
var (
	// ErrUnauthorized indicates the credential was rejected.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrServerError indicates a server-side failure.
	ErrServerError = errors.New("server error")
)

// APIError is an error response from the Vessel API.
type APIError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int

	// Message is the error message from the API, when it sent one.
	Message string

	// Endpoint is the path that was called.
	Endpoint string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("vessel API error (%d) at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("vessel API error (%d) at %s", e.StatusCode, e.Endpoint)
}

// Unwrap maps the status code onto a sentinel error.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= 500:
		return ErrServerError
	default:
		return nil
	}
}

// IsUnauthorized reports whether err means the credential was rejected.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func parseError(resp *http.Response, path string) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Endpoint:   path,
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error
	}

	return apiErr
}
