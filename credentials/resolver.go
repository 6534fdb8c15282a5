package credentials

import (
	"os"

	"github.com/vesselhq/vessel/config"
)

// EnvAPIKey is the environment variable carrying an API key override.
const EnvAPIKey = "VESSEL_API_KEY"

// Source indicates where a resolved credential came from.
type Source string

// Credential source constants, highest precedence first.
const (
	// SourceFlag indicates an explicit --api-key flag.
	SourceFlag Source = "flag"

	// SourceEnv indicates the VESSEL_API_KEY environment variable.
	SourceEnv Source = "env"

	// SourceConfig indicates the credential stored for the configured team.
	SourceConfig Source = "config"
)

// Resolved is the API credential selected for one invocation. It is never
// persisted; callers thread it explicitly to whatever needs it (the API
// client) instead of stashing it in ambient process state.
type Resolved struct {
	// APIKey is the secret to authenticate with.
	APIKey string

	// Source records which precedence level supplied the key.
	Source Source

	// Team is the team the key belongs to. Only known for config-sourced
	// credentials; flag and env overrides are opaque.
	Team string
}

// Resolve computes the effective credential for one invocation.
//
// Sources are consulted strictly in precedence order: the override flag,
// then the environment, then the config's team looked up in the credential
// store. The first non-empty source wins and later sources are not touched,
// so a flag override never even reads the config file.
//
// The second return value is false when no source yields a credential; that
// is a normal outcome, not an error. Config validation failures (a team
// with no stored credential) propagate as errors.
func Resolve(override string, cfg *config.Store, store *Store) (Resolved, bool, error) {
	if override != "" {
		return Resolved{APIKey: override, Source: SourceFlag}, true, nil
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		return Resolved{APIKey: key, Source: SourceEnv}, true, nil
	}

	team, ok, err := cfg.Get("team")
	if err != nil {
		return Resolved{}, false, err
	}
	if !ok {
		return Resolved{}, false, nil
	}

	secret, ok, err := store.Get(team)
	if err != nil {
		return Resolved{}, false, err
	}
	if !ok {
		// Read validation normally guarantees the entry exists; it can
		// vanish between the read and this lookup.
		return Resolved{}, false, nil
	}

	return Resolved{APIKey: secret, Source: SourceConfig, Team: team}, true, nil
}
