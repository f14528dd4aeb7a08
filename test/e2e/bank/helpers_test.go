package bank_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/app"
	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * End-to-end tests run the full bank application in-process against a real
 * Redis revocation store started with testcontainers. They are skipped in
 * -short mode and when Docker is not available.
 */

const (
	clientEmail    = "cedric.alonso@efrei.net"
	clientPassword = "securePasswordCedric123*"
	otherEmail     = "guillaume.gomez@efrei.net"
	otherPassword  = "securePasswordGuillaume123*"
	adminEmail     = "admin@efrei.net"
	adminPassword  = "securePasswordAdmin123*"
)

var signingSecret = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("e2e-secret-", 4)))

// setupRedisContainer starts a throwaway Redis and returns its address.
func setupRedisContainer(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, mappedPort.Port())
}

// testConfig returns a configuration with a fresh database under dir.
func testConfig(dir, redisAddr string) app.Config {
	return app.Config{
		Env:                   "test",
		LogLevel:              "warn",
		LogFormat:             "json",
		ShutdownGracePeriod:   time.Second,
		HousekeepingInterval:  time.Minute,
		DatabaseFile:          filepath.Join(dir, "bank.db"),
		PepperFile:            filepath.Join(dir, "pepper"),
		SeedDatabase:          true,
		JWTSecret:             signingSecret,
		JWTExpiration:         time.Hour,
		Issuer:                "bank-api",
		RedisAddr:             redisAddr,
		RevocationPrefix:      "jwt:blacklist:",
		RateLimitWindow:       time.Minute,
		RateLimitDefaultLimit: 10,
		TransactionThreshold:  decimal.NewFromInt(1000),
	}
}

// startBank runs the application behind an httptest server and returns a
// client for it.
func startBank(t *testing.T, cfg app.Config) *banksdk.Client {
	t.Helper()

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Close()
	})

	return banksdk.NewClient(srv.URL)
}

func login(t *testing.T, client *banksdk.Client, email, password string) *banksdk.Session {
	t.Helper()
	s, err := client.Login(t.Context(), email, password)
	require.NoError(t, err)
	return s
}

// assertAPIError checks that err is an API error with the given status.
func assertAPIError(t *testing.T, err error, status int) *banksdk.APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *banksdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *banksdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %s", apiErr)
	return apiErr
}
