package revocation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/revocation"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("put then exists until ttl elapses", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		s := revocation.NewMemoryStore(clock.Now)

		require.NoError(t, s.Put(ctx, "k", time.Minute))

		ok, err := s.Exists(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)

		clock.Advance(59 * time.Second)
		ok, _ = s.Exists(ctx, "k")
		require.True(t, ok)

		clock.Advance(time.Second)
		ok, _ = s.Exists(ctx, "k")
		require.False(t, ok, "record must not outlive its ttl")
		require.Equal(t, 0, s.Len(), "expired record is dropped on lookup")
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		s := revocation.NewMemoryStore(nil)
		ok, err := s.Exists(ctx, "missing")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		t.Parallel()
		s := revocation.NewMemoryStore(nil)
		require.ErrorIs(t, s.Put(ctx, "k", 0), revocation.ErrInvalidTTL)
		require.ErrorIs(t, s.Put(ctx, "k", -time.Second), revocation.ErrInvalidTTL)
		require.Equal(t, 0, s.Len())
	})

	t.Run("sweep drops only expired records", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		s := revocation.NewMemoryStore(clock.Now)

		require.NoError(t, s.Put(ctx, "short", time.Second))
		require.NoError(t, s.Put(ctx, "long", time.Hour))

		clock.Advance(2 * time.Second)
		n, err := s.Sweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 1, s.Len())

		ok, _ := s.Exists(ctx, "long")
		require.True(t, ok)
	})

	t.Run("ping always succeeds", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, revocation.NewMemoryStore(nil).Ping(ctx))
	})
}
