package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
	"github.com/aussiebroadwan/bankgate/pkg/ratelimit"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
)

// RateLimitMiddleware admits requests through l. It must run after
// AuthnMiddleware: authenticated callers are limited per subject and role,
// anonymous ones per client address.
func RateLimitMiddleware(l *ratelimit.Limiter, trustProxy bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, role := limiterKey(r, trustProxy)

			d := l.Admit(key, r.URL.Path, role.String())
			if d.Limited {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			}
			if !d.Allowed {
				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					"key", key,
					"endpoint", ratelimit.NormalizePath(r.URL.Path),
					"retry_after_s", d.RetryAfterSeconds(),
				)
				writeError(w, r, &service.TooManyRequestsError{RetryAfter: d.RetryAfter})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func limiterKey(r *http.Request, trustProxy bool) (string, domain.Role) {
	if id, ok := IdentityFromContext(r.Context()); ok && id.Authenticated() {
		return "user:" + id.Subject, id.Role
	}
	return "ip:" + httpx.ClientIP(r, trustProxy), domain.RoleAnonymous
}
