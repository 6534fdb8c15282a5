package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsSessionToken reports whether credential looks like a JWT-format session
// token rather than a static API key.
func IsSessionToken(credential string) bool {
	return strings.Count(credential, ".") == 2 &&
		strings.HasPrefix(credential, "eyJ")
}

// Expiry returns the expiration time embedded in a JWT-format credential.
// The signature is NOT verified; the CLI has no signing key, and the result
// is used only for display ("expires in 3h"). Static API keys and tokens
// without an exp claim return false.
func Expiry(credential string) (time.Time, bool) {
	if !IsSessionToken(credential) {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(credential, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
