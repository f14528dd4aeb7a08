package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// SecretSize256 provides 256 bits of key material, enough for HMAC-SHA256.
const SecretSize256 = 32

// GenerateSecret returns size cryptographically random bytes.
func GenerateSecret(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random secret: %w", err)
	}
	return buf, nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token.
// Revocation records are keyed by it so raw bearer tokens are never stored.
//
// The fingerprint is returned as a base64url-encoded string (43 chars).
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
