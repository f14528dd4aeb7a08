package http

import (
	"net/http"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
)

// RequireRole lets through authenticated callers holding one of roles.
// Anonymous callers get 401, authenticated ones with another role get 403.
func RequireRole(roles ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok || !id.Authenticated() {
				banksdk.ErrAuthenticationRequired.WriteError(w)
				return
			}
			if !id.Has(roles...) {
				banksdk.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthenticated lets through any authenticated caller.
func RequireAuthenticated() httpx.Middleware {
	return RequireRole(domain.RoleAdmin, domain.RoleClient)
}
