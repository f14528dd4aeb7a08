package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime used when a service does not
// configure one.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims. Only the registered claims are used:
// the subject is the user's email, iat/exp bound the token's lifetime and jti
// keeps two tokens minted in the same second distinct.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds minimally-correct claims.
func NewAccessClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// nbf, relative to now.
func (c *Claims) ValidateExpiry(now time.Time) error {
	// A token without exp would live forever, which we never issue.
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}

	// exp is exclusive: at exactly exp the token is already dead.
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// Remaining returns how long the token has left to live at now. It is zero
// or negative for expired tokens.
func (c *Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
