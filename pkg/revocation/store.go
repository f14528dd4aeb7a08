// Package revocation holds records of bearer tokens that were withdrawn
// before their natural expiry. Every record carries a TTL so it disappears
// together with the token it revokes.
package revocation

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidTTL is returned when a record would never expire.
var ErrInvalidTTL = errors.New("revocation: ttl must be positive")

// Store is the narrow key/value capability the token service needs.
type Store interface {
	// Put marks key as revoked for ttl.
	Put(ctx context.Context, key string, ttl time.Duration) error

	// Exists reports whether key is currently revoked.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
