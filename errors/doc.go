// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//
// Sentinel errors for common scenarios:
//   - ErrNotAuthenticated: No credential could be resolved for the invocation
//   - ErrUnknownTeam: A team has no stored credential
//   - ErrUnknownKey: A config path is not part of the schema vocabulary
//   - ErrConnectionFailed: The API is unreachable
//
// Example usage:
//
//	if err := cfg.Set("team", name); err != nil {
//	    if errors.IsValidation(err) {
//	        // The message and suggestion are already written for the
//	        // user; print them as-is and exit non-zero.
//	    }
//	    return err
//	}
package errors
