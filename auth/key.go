package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// KeyPrefix is the prefix of every vessel API key.
const KeyPrefix = "vsl_"

// minKeyLength is the shortest credential accepted: the prefix plus a
// 16-character random body.
const minKeyLength = len(KeyPrefix) + 16

// fingerprintLength is how many hex digits of the hash Fingerprint shows.
const fingerprintLength = 12

// ValidateKey checks that key looks like a vessel API key. JWT-format
// session tokens are accepted too; see IsSessionToken.
func ValidateKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidAPIKey)
	}

	if IsSessionToken(key) {
		return nil
	}

	if !strings.HasPrefix(key, KeyPrefix) {
		return fmt.Errorf("%w: expected %q prefix", ErrInvalidAPIKey, KeyPrefix)
	}
	if len(key) < minKeyLength {
		return fmt.Errorf("%w: key too short", ErrInvalidAPIKey)
	}
	for _, r := range key[len(KeyPrefix):] {
		if !isBase62(r) {
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidAPIKey, r)
		}
	}
	return nil
}

// Fingerprint returns a short SHA-256 digest of key, safe to display.
func Fingerprint(key string) string {
	h := sha256.Sum256([]byte(key))
	return "sha256:" + hex.EncodeToString(h[:])[:fingerprintLength]
}

func isBase62(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
