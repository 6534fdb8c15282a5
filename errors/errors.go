package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrNotAuthenticated indicates no API credential could be resolved.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnknownTeam indicates a team identifier with no stored credential.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrUnknownKey indicates a config path outside the schema vocabulary.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrUnsupportedVersion indicates a config document written with a
	// schema version this build does not understand.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrConnectionFailed indicates the API is unreachable.
	ErrConnectionFailed = errors.New("connection failed")
)
