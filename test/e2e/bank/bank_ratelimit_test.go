package bank_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies anonymous login attempts are limited per
// address (5 per minute by default).
func TestRateLimitLogin(t *testing.T) {
	client := startBank(t, testConfig(t.TempDir(), setupRedisContainer(t)))

	for range 5 {
		_, err := client.Login(t.Context(), clientEmail, "wrong")
		assertAPIError(t, err, http.StatusUnauthorized)
	}

	_, err := client.Login(t.Context(), clientEmail, clientPassword)
	apiErr := assertAPIError(t, err, http.StatusTooManyRequests)
	require.Greater(t, apiErr.RetryAfter, time.Duration(0))
	require.LessOrEqual(t, apiErr.RetryAfter, time.Minute)
}

// TestRateLimitPerSubject checks credits are limited per user across all
// account ids, and that another user is unaffected.
func TestRateLimitPerSubject(t *testing.T) {
	client := startBank(t, testConfig(t.TempDir(), setupRedisContainer(t)))

	cedric := login(t, client, clientEmail, clientPassword)
	guillaume := login(t, client, otherEmail, otherPassword)

	account, err := cedric.Mine(t.Context())
	require.NoError(t, err)

	one := decimal.NewFromInt(1)
	for range 5 {
		_, err := cedric.Credit(t.Context(), account.ID, one)
		require.NoError(t, err)
	}

	_, err = cedric.Credit(t.Context(), uuid.New(), one)
	assertAPIError(t, err, http.StatusTooManyRequests)

	theirs, err := guillaume.Mine(t.Context())
	require.NoError(t, err)
	_, err = guillaume.Credit(t.Context(), theirs.ID, one)
	require.NoError(t, err)
}
