// Package auth provides API key helpers for the vessel CLI.
//
// This package includes:
//   - API key format validation (vsl_ prefix, base62 body)
//   - Key fingerprints for display without leaking the secret
//   - Expiry inspection for JWT-format tokens
//
// # Key validation
//
//	if err := auth.ValidateKey(key); err != nil {
//	    // malformed key, reject before storing
//	}
//
// # Fingerprints
//
// Commands that show credential state (auth status) display a short
// SHA-256 fingerprint instead of the secret:
//
//	fmt.Println(auth.Fingerprint(key)) // "sha256:3f1a9b2c4d5e"
//
// # Token expiry
//
// Vessel issues both static API keys and JWT-format session tokens. For
// the latter, Expiry decodes the claims without verifying the signature
// (the CLI has no signing key, and display is the only use):
//
//	if exp, ok := auth.Expiry(token); ok {
//	    fmt.Println("expires", exp)
//	}
package auth
