package auth

import "errors"

// Authentication errors.
var (
	// ErrInvalidAPIKey indicates the API key format is invalid.
	ErrInvalidAPIKey = errors.New("invalid API key format")
)
