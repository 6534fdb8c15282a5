// Package config owns the vessel CLI's persisted settings document.
//
// The document lives at ~/.vessel/config.yml, is schema-versioned, and is
// addressed through flat dotted paths derived from a declarative schema
// tree (see Paths). Nested settings such as "defaults.project" are exposed
// the same way as top-level ones, and the path vocabulary doubles as the
// argument enum for 'vessel config get|set|delete'.
//
// # Reading and failure recovery
//
// Read tolerates a broken environment rather than crashing the tool:
//
//   - missing file: defaults are returned; the file is only created on the
//     first explicit write
//   - unparsable file: defaults are returned AND written over the corrupt
//     content, so the warning fires once instead of on every invocation
//   - valid YAML that fails schema validation: a typed error is returned;
//     most importantly a team with no stored credential, which carries a
//     fuzzy-matched "did you mean" hint
//
// The team invariant is checked on every Read, not just on explicit sets.
// That means reading an unrelated path can fail if the config file was
// edited to point at a team that no longer has a credential; this coupling
// is deliberate, because continuing with a dangling team would leave
// credential resolution silently broken.
//
// # Usage
//
//	store := config.NewStore(path, credentialStore)
//	team, ok, err := store.Get("team")
//	err = store.Set("defaults.project", "api-gateway")
//	err = store.Remove("team")
package config
