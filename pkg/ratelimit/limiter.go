// Package ratelimit implements a sliding-window-log rate limiter keyed on
// (caller, endpoint) with per-endpoint, per-role limits.
package ratelimit

import (
	"errors"
	"math"
	"sync"
	"time"
)

const (
	DefaultWindow = time.Minute
	DefaultLimit  = 10
)

// Config configures a Limiter.
type Config struct {
	// Window is the trailing duration requests are counted over.
	Window time.Duration

	// DefaultLimit applies to roles missing from a listed endpoint.
	DefaultLimit int

	// Table lists the limited endpoints. Nil means DefaultTable.
	Table Table

	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// Decision is the outcome of Admit.
type Decision struct {
	Allowed bool

	// Limited is false when the endpoint is not in the table and the request
	// bypassed the limiter.
	Limited bool

	Limit     int
	Remaining int

	// RetryAfter is set on denials and is always in (0, Window].
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds.
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(d.RetryAfter.Seconds()))
}

// Limiter is safe for concurrent use. Each bucket has its own lock so
// unrelated callers never contend.
type Limiter struct {
	window       time.Duration
	defaultLimit int
	table        Table
	nowFn        func() time.Time

	windows sync.Map // bucket -> *window
}

type window struct {
	mu   sync.Mutex
	hits []time.Time // ascending
	dead bool        // removed from the map by Sweep
}

// New constructs a Limiter, filling unset fields with defaults.
func New(cfg Config) (*Limiter, error) {
	if cfg.Window == 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = DefaultLimit
	}
	if cfg.Table == nil {
		cfg.Table = DefaultTable()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Window < 0 {
		return nil, errors.New("ratelimit: window must be positive")
	}
	if cfg.DefaultLimit < 0 {
		return nil, errors.New("ratelimit: default limit must be positive")
	}
	if err := cfg.Table.Validate(); err != nil {
		return nil, err
	}

	return &Limiter{
		window:       cfg.Window,
		defaultLimit: cfg.DefaultLimit,
		table:        cfg.Table,
		nowFn:        cfg.Now,
	}, nil
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Admit records a request from key on endpoint if it fits under the limit
// for role. endpoint may be a raw path; it is normalized first.
func (l *Limiter) Admit(key, endpoint, role string) Decision {
	endpoint = NormalizePath(endpoint)

	limit, ok := l.table.Lookup(endpoint, role, l.defaultLimit)
	if !ok {
		return Decision{Allowed: true}
	}

	bucket := key + " " + endpoint
	for {
		w := l.load(bucket)

		w.mu.Lock()
		if w.dead {
			// Lost a race with Sweep; pick up the replacement.
			w.mu.Unlock()
			continue
		}

		now := l.nowFn()
		w.prune(now.Add(-l.window))

		if len(w.hits) >= limit {
			retry := l.window - now.Sub(w.hits[0])
			w.mu.Unlock()
			return Decision{
				Limited:    true,
				Limit:      limit,
				RetryAfter: min(max(retry, time.Nanosecond), l.window),
			}
		}

		w.hits = append(w.hits, now)
		remaining := limit - len(w.hits)
		w.mu.Unlock()

		return Decision{
			Allowed:   true,
			Limited:   true,
			Limit:     limit,
			Remaining: remaining,
		}
	}
}

func (l *Limiter) load(bucket string) *window {
	if v, ok := l.windows.Load(bucket); ok {
		return v.(*window)
	}
	v, _ := l.windows.LoadOrStore(bucket, &window{})
	return v.(*window)
}

// prune drops hits at or before cutoff. Caller holds w.mu.
func (w *window) prune(cutoff time.Time) {
	i := 0
	for i < len(w.hits) && !w.hits[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.hits = append(w.hits[:0], w.hits[i:]...)
	}
}

// Sweep forgets buckets with no hits left in the window and returns how many
// were removed. Run it periodically so idle callers do not pile up.
func (l *Limiter) Sweep() int {
	cutoff := l.nowFn().Add(-l.window)

	n := 0
	l.windows.Range(func(key, value any) bool {
		w := value.(*window)

		w.mu.Lock()
		w.prune(cutoff)
		if !w.dead && len(w.hits) == 0 {
			w.dead = true
			l.windows.CompareAndDelete(key, w)
			n++
		}
		w.mu.Unlock()

		return true
	})
	return n
}

// Len returns the number of tracked buckets.
func (l *Limiter) Len() int {
	n := 0
	l.windows.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
