package errors

import "errors"

// IsAuthError checks if an error is authentication-related.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// IsValidation checks if an error is a config validation failure
// (unknown team, unknown key, or unsupported document version).
func IsValidation(err error) bool {
	return errors.Is(err, ErrUnknownTeam) ||
		errors.Is(err, ErrUnknownKey) ||
		errors.Is(err, ErrUnsupportedVersion)
}

// IsConnectionError checks if an error is connection-related.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}
