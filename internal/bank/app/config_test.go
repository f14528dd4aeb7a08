package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"ENV", "PORT", "JWT_EXPIRATION", "RATELIMIT_WINDOW", "RATELIMIT_DEFAULT_LIMIT",
		"TRANSACTION_THRESHOLD", "SEED_DATABASE", "TRUST_PROXY_HEADERS", "REDIS_ADDR",
		"REVOCATION_PREFIX", "JWT_ISSUER",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.JWTExpiration)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Equal(t, 10, cfg.RateLimitDefaultLimit)
	require.True(t, cfg.TransactionThreshold.Equal(decimal.NewFromInt(1000)))
	require.True(t, cfg.SeedDatabase, "dev seeds by default")
	require.False(t, cfg.TrustProxyHeaders)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, "jwt:blacklist:", cfg.RevocationPrefix)
	require.Equal(t, "bank-api", cfg.Issuer)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRATION", "15m")
	t.Setenv("RATELIMIT_WINDOW", "30")
	t.Setenv("RATELIMIT_DEFAULT_LIMIT", "3")
	t.Setenv("TRANSACTION_THRESHOLD", "250.50")
	t.Setenv("TRUST_PROXY_HEADERS", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEED_DATABASE", "")

	cfg := LoadConfig()

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 15*time.Minute, cfg.JWTExpiration)
	require.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	require.Equal(t, 3, cfg.RateLimitDefaultLimit)
	require.True(t, cfg.TransactionThreshold.Equal(decimal.RequireFromString("250.5")))
	require.True(t, cfg.TrustProxyHeaders)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.False(t, cfg.SeedDatabase, "prod does not seed unless asked")
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("TRANSACTION_THRESHOLD", "-5")
	t.Setenv("TRUST_PROXY_HEADERS", "maybe")
	t.Setenv("JWT_EXPIRATION", "soon")

	cfg := LoadConfig()

	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.TransactionThreshold.Equal(decimal.NewFromInt(1000)))
	require.False(t, cfg.TrustProxyHeaders)
	require.Equal(t, time.Hour, cfg.JWTExpiration)
}
