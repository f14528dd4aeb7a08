package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/banksdk"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
)

// Authenticator resolves bearer tokens. *service.AuthService implements it.
type Authenticator interface {
	ExtractBearer(header string) (string, bool)
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

// AuthnMiddleware establishes the caller's identity.
//
// A request without a bearer token continues as anonymous. A request with a
// token that fails any check is rejected with one generic invalid_token
// response. An identity already present in the context is kept as is.
func AuthnMiddleware(gate Authenticator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if id, ok := IdentityFromContext(ctx); ok && id.Authenticated() {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := gate.ExtractBearer(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, domain.Anonymous)))
				return
			}

			id, err := gate.Authenticate(ctx, token)
			if err != nil {
				if !errors.Is(err, service.ErrInvalidToken) {
					writeError(w, r, err)
					return
				}
				slogx.FromContext(ctx).Info("bearer token rejected")
				banksdk.ErrInvalidToken.WriteError(w)
				return
			}

			ctx = WithIdentity(ctx, id)
			ctx = slogx.With(ctx, "subject", id.Subject, "role", id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
