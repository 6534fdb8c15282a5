// Package credentials persists API credentials keyed by team and resolves
// the effective credential for one CLI invocation.
//
// Secrets live in their own file (~/.vessel/credentials.yml) with owner-only
// permissions, deliberately separate from general settings so the config
// file can be shared or inspected without leaking keys.
//
// # Store
//
//	store := credentials.NewStore(path)
//	store.Set("acme", "vsl_abc123...")
//	secret, ok, err := store.Get("acme")
//	teams, err := store.List() // sorted team names, never secrets
//
// # Resolution
//
// Resolve applies the invocation precedence: an explicit --api-key flag
// beats the VESSEL_API_KEY environment variable, which beats the credential
// stored for the configured team. The first non-empty source wins and later
// sources are not consulted.
//
//	resolved, ok, err := credentials.Resolve(flagKey, cfg, store)
//	if !ok {
//	    // no credential from any source; caller decides whether the
//	    // command requires one
//	}
package credentials
