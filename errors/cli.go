package errors

import (
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewNotAuthenticated creates the error shown when a command needs a
// credential and none could be resolved from any source.
func NewNotAuthenticated() error {
	return &CLIError{
		Err:        ErrNotAuthenticated,
		Message:    "You are not logged in.",
		Suggestion: "Run 'vessel auth login' to authenticate.",
	}
}

// NewUnknownTeam creates the error for a team with no stored credential.
// suggestion may be empty when no similar team exists.
func NewUnknownTeam(team, suggestion string) error {
	e := &CLIError{
		Err:        ErrUnknownTeam,
		Message:    fmt.Sprintf("No credential stored for team %q.", team),
		Suggestion: "Run 'vessel auth login' to authenticate with this team.",
	}
	if suggestion != "" {
		e.Details = fmt.Sprintf("Did you mean %q?", suggestion)
	}
	return e
}

// NewUnknownKey creates the error for a config path outside the schema.
func NewUnknownKey(key string, valid []string) error {
	return &CLIError{
		Err:     ErrUnknownKey,
		Message: fmt.Sprintf("Unknown config key: %s", key),
		Details: "Valid keys: " + strings.Join(valid, ", "),
	}
}

// WrapConnectionError wraps network failures with guidance pointing at the
// API URL in use. Errors that are not connection-shaped pass through.
func WrapConnectionError(err error, apiURL string) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("Cannot reach the Vessel API at %s", apiURL),
			Suggestion: "Check your network connection, or set VESSEL_API_URL if you use a custom endpoint.",
		}
	}

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("Connection to %s timed out", apiURL),
			Suggestion: "The API may be overloaded or unreachable.\nTry again in a moment.",
		}
	}

	return err
}
