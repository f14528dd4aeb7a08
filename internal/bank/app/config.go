package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/jwtx"
	"github.com/aussiebroadwan/bankgate/pkg/ratelimit"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Sweep interval for limiter and revocation state (default: 1m)

	DatabaseFile string // Path to SQLite database file (default: ./bank.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)
	SeedDatabase bool   // Create the demo users and accounts on start (default: true in dev)

	JWTSecret     string        // Base64 HMAC secret, at least 32 bytes. Empty generates an ephemeral one.
	JWTExpiration time.Duration // Token lifetime (default: 1h)
	Issuer        string        // Issuer claim (default: bank-api)

	RedisAddr        string // Revocation store address. Empty uses an in-process store.
	RedisPassword    string
	RedisDB          int
	RevocationPrefix string // Key prefix for revocation records (default: jwt:blacklist:)

	RateLimitWindow       time.Duration // Sliding window length (default: 60s)
	RateLimitDefaultLimit int           // Limit for roles missing from a listed endpoint (default: 10)
	RateLimitConfigFile   string        // Optional YAML endpoint limit table
	TrustProxyHeaders     bool          // Key anonymous callers on X-Forwarded-For (default: false)

	TransactionThreshold decimal.Decimal // Amount splitting client and admin tiers (default: 1000)
}

func LoadConfig() Config {
	env := getEnvOrDefault("ENV", "dev")

	return Config{
		Env:                  env,
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Minute),

		DatabaseFile: getEnvOrDefault("BANK_DATABASE_FILE", "bank.db"),
		PepperFile:   getEnvOrDefault("BANK_PEPPER_FILE", "pepper"),
		SeedDatabase: getEnvBoolOrDefault("SEED_DATABASE", env == "dev"),

		JWTSecret:     os.Getenv("JWT_SECRET_KEY"),
		JWTExpiration: getEnvDurationOrDefault("JWT_EXPIRATION", jwtx.DefaultAccessTokenTTL),
		Issuer:        getEnvOrDefault("JWT_ISSUER", "bank-api"),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvIntOrDefault("REDIS_DB", 0),
		RevocationPrefix: getEnvOrDefault("REVOCATION_PREFIX", service.DefaultRevocationPrefix),

		RateLimitWindow:       getEnvDurationOrDefault("RATELIMIT_WINDOW", ratelimit.DefaultWindow),
		RateLimitDefaultLimit: getEnvIntOrDefault("RATELIMIT_DEFAULT_LIMIT", ratelimit.DefaultLimit),
		RateLimitConfigFile:   os.Getenv("RATELIMIT_CONFIG_FILE"),
		TrustProxyHeaders:     getEnvBoolOrDefault("TRUST_PROXY_HEADERS", false),

		TransactionThreshold: getEnvDecimalOrDefault("TRANSACTION_THRESHOLD", service.DefaultTransactionThreshold),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func getEnvDecimalOrDefault(key string, defaultValue decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := decimal.NewFromString(value); err == nil && !d.IsNegative() {
		return d
	}

	return defaultValue
}
