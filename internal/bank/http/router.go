package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/aussiebroadwan/bankgate/pkg/httpx"
	"github.com/aussiebroadwan/bankgate/pkg/ratelimit"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"

	_ "github.com/aussiebroadwan/bankgate/api/bank" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService    *service.AuthService
	AccountService *service.AccountService
	Limiter        *ratelimit.Limiter

	// TrustProxyHeaders makes the limiter key anonymous callers on
	// X-Forwarded-For / X-Real-IP. Only enable behind a trusted proxy.
	TrustProxyHeaders bool
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}
}

// ApplyRoutes registers every route and builds the gating pipeline. The
// services and the limiter must be set first.
func (r *Router) ApplyRoutes() {
	// Order matters: the limiter keys on the identity the gate resolves.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		AuthnMiddleware(r.AuthService),
		RateLimitMiddleware(r.Limiter, r.TrustProxyHeaders),
	}

	r.registerAuth()
	r.registerAccounts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Bank API
//	@version		0.1.0
//	@description	Bank account API. Every request passes an authentication gate and a sliding-window rate limiter before it reaches a handler.
//	@description
//	@description				Tokens are HS256 JWTs. Logging out revokes the token until it would have expired.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/bankgate
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.HandleFunc("POST /auth/login", h.HandleLogin)
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout), RequireAuthenticated()),
	)
	r.Mux.Handle("GET /auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe), RequireAuthenticated()),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}
	adminOnly := RequireRole(domain.RoleAdmin)
	anyUser := RequireRole(domain.RoleAdmin, domain.RoleClient)

	r.Mux.Handle("POST /bank/accounts/create", httpx.Chain(http.HandlerFunc(h.HandleCreate), adminOnly))
	r.Mux.Handle("GET /bank/accounts/all", httpx.Chain(http.HandlerFunc(h.HandleAll), adminOnly))
	r.Mux.Handle("GET /bank/accounts/mine", httpx.Chain(http.HandlerFunc(h.HandleMine), anyUser))
	r.Mux.Handle("PATCH /bank/accounts/{id}/credit", httpx.Chain(http.HandlerFunc(h.HandleCredit), anyUser))
	r.Mux.Handle("PATCH /bank/accounts/{id}/debit", httpx.Chain(http.HandlerFunc(h.HandleDebit), anyUser))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.AuthService.Tokens))
}
