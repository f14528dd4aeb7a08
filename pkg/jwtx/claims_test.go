package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "bank-api",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("bank-api"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("other-api")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry(now))
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})

	t.Run("expired exactly at exp", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Minute)),
				NotBefore: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrNotYetValid)
	})

	t.Run("missing exp", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrInvalidClaim)
	})
}

func TestNewAccessClaims(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := jwtx.NewAccessClaims("alice@example.com", "bank-api", 15*time.Minute, now)

	require.Equal(t, "alice@example.com", c.Subject)
	require.Equal(t, "bank-api", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(15*time.Minute), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.Equal(t, 15*time.Minute, c.Remaining(now))
	require.Equal(t, -time.Minute, c.Remaining(now.Add(16*time.Minute)))
}
