package domain

import (
	"errors"
	"strings"
)

// Role is a closed set of access tiers.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleClient    Role = "CLIENT"
	RoleAnonymous Role = "ANONYMOUS"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleClient, RoleAnonymous:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }

// Storable reports whether users can be persisted with this role. Anonymous
// only ever describes callers without a token.
func (r Role) Storable() bool { return r == RoleAdmin || r == RoleClient }
