package ratelimit

import (
	"fmt"
	"regexp"
	"strings"
)

// IDPlaceholder replaces identifier segments in normalized endpoints.
const IDPlaceholder = "{id}"

// Role names used by the built-in table. The limiter itself treats roles as
// opaque strings.
const (
	RoleAdmin     = "ADMIN"
	RoleClient    = "CLIENT"
	RoleAnonymous = "ANONYMOUS"
)

var uuidSegment = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NormalizePath replaces every UUID-shaped path segment with IDPlaceholder so
// that per-resource paths share one bucket. It is idempotent.
func NormalizePath(path string) string {
	if !strings.Contains(path, "-") {
		return path
	}

	segs := strings.Split(path, "/")
	for i, s := range segs {
		if uuidSegment.MatchString(s) {
			segs[i] = IDPlaceholder
		}
	}
	return strings.Join(segs, "/")
}

// Table maps a normalized endpoint to per-role limits, e.g.
//
//	"/auth/login": {"ANONYMOUS": 5}
//
// Endpoints absent from the table are not limited.
type Table map[string]map[string]int

// DefaultTable returns the limits the service ships with.
func DefaultTable() Table {
	return Table{
		"/auth/login": {
			RoleAnonymous: 5,
		},
		"/bank/accounts/" + IDPlaceholder + "/credit": {
			RoleAdmin:  15,
			RoleClient: 5,
		},
		"/bank/accounts/" + IDPlaceholder + "/debit": {
			RoleAdmin:  15,
			RoleClient: 5,
		},
	}
}

// Lookup returns the limit for role on endpoint. ok is false when the
// endpoint is not listed. Roles missing from a listed endpoint get fallback.
func (t Table) Lookup(endpoint, role string, fallback int) (limit int, ok bool) {
	roles, ok := t[endpoint]
	if !ok {
		return 0, false
	}
	if limit, ok := roles[role]; ok {
		return limit, true
	}
	return fallback, true
}

// Validate rejects non-positive limits and endpoints that are not already
// normalized.
func (t Table) Validate() error {
	for endpoint, roles := range t {
		if !strings.HasPrefix(endpoint, "/") {
			return fmt.Errorf("ratelimit: endpoint %q must start with /", endpoint)
		}
		if NormalizePath(endpoint) != endpoint {
			return fmt.Errorf("ratelimit: endpoint %q must use %s for identifiers", endpoint, IDPlaceholder)
		}
		for role, limit := range roles {
			if limit <= 0 {
				return fmt.Errorf("ratelimit: limit for %s on %s must be positive, got %d", role, endpoint, limit)
			}
		}
	}
	return nil
}
