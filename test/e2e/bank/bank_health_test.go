package bank_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies both probes report the Redis-backed store.
func TestHealthEndpoints(t *testing.T) {
	client := startBank(t, testConfig(t.TempDir(), setupRedisContainer(t)))

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Revocation)
}
