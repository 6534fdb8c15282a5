package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", "vsl_aB3dE5fG7hJ9kL1mN2pQ", false},
		{"empty", "", true},
		{"wrong prefix", "sk_aB3dE5fG7hJ9kL1mN2pQ", true},
		{"too short", "vsl_abc", true},
		{"bad characters", "vsl_aB3dE5fG7hJ9kL1m!!!!", true},
		{"whitespace trimmed", "  vsl_aB3dE5fG7hJ9kL1mN2pQ\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAPIKey) {
				t.Errorf("error = %v, want ErrInvalidAPIKey", err)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("vsl_aB3dE5fG7hJ9kL1mN2pQ")
	if !strings.HasPrefix(fp, "sha256:") {
		t.Errorf("Fingerprint = %q, want sha256: prefix", fp)
	}
	if len(fp) != len("sha256:")+fingerprintLength {
		t.Errorf("Fingerprint length = %d, want %d", len(fp), len("sha256:")+fingerprintLength)
	}
	if strings.Contains(fp, "vsl_") {
		t.Error("Fingerprint must not contain key material")
	}
	if fp != Fingerprint("vsl_aB3dE5fG7hJ9kL1mN2pQ") {
		t.Error("Fingerprint should be deterministic")
	}
}

func signedTestToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestExpiry_SessionToken(t *testing.T) {
	want := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signedTestToken(t, want)

	got, ok := Expiry(token)
	if !ok {
		t.Fatal("Expiry should decode a JWT with exp")
	}
	if !got.Equal(want) {
		t.Errorf("Expiry = %v, want %v", got, want)
	}
}

func TestExpiry_NoExpClaim(t *testing.T) {
	token := signedTestToken(t, time.Time{})
	if _, ok := Expiry(token); ok {
		t.Error("Expiry should report false without an exp claim")
	}
}

func TestExpiry_StaticKey(t *testing.T) {
	if _, ok := Expiry("vsl_aB3dE5fG7hJ9kL1mN2pQ"); ok {
		t.Error("Expiry should report false for static keys")
	}
}

func TestValidateKey_AcceptsSessionToken(t *testing.T) {
	token := signedTestToken(t, time.Now().Add(time.Hour))
	if err := ValidateKey(token); err != nil {
		t.Errorf("ValidateKey(jwt) error = %v, want nil", err)
	}
}
