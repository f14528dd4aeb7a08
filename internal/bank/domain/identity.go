package domain

// Identity is who a request acts as. It is resolved once by the
// authentication gate and travels in the request context from then on.
type Identity struct {
	Subject string
	Role    Role
}

// Anonymous is the identity of a request without a token.
var Anonymous = Identity{Role: RoleAnonymous}

// Authenticated reports whether the identity came from a valid token.
func (i Identity) Authenticated() bool {
	return i.Subject != "" && i.Role != RoleAnonymous
}

// Has reports whether the identity holds one of roles.
func (i Identity) Has(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
