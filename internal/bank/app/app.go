package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/bankgate/internal/bank/http"
	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/aussiebroadwan/bankgate/internal/bank/store"
	"github.com/aussiebroadwan/bankgate/internal/bank/store/drivers/sqlite"
	"github.com/aussiebroadwan/bankgate/pkg/cryptox"
	"github.com/aussiebroadwan/bankgate/pkg/ratelimit"
	"github.com/aussiebroadwan/bankgate/pkg/revocation"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
)

// BuildVersion is reported by /readyz and the startup log. Release images
// override it with -ldflags "-X .../internal/bank/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the bank service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	revoked    revocation.Store
	limiter    *ratelimit.Limiter
	passwords  *cryptox.PasswordHasher
	signingKey []byte

	// Services
	tokenService        *service.TokenService
	authService         *service.AuthService
	accountService      *service.AccountService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "bank-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initSecurity(); err != nil {
		app.closeAll()
		return nil, err
	}
	if err := app.initRevocation(ctx); err != nil {
		app.closeAll()
		return nil, err
	}
	if err := app.initServices(); err != nil {
		app.closeAll()
		return nil, err
	}
	if app.cfg.SeedDatabase {
		seeder := &service.SeedService{
			Store:     app.db,
			Passwords: app.passwords,
			Logger:    app.logger,
			Users:     service.DefaultSeedUsers(),
		}
		if err := seeder.Seed(ctx); err != nil {
			app.closeAll()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("bank service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeAll()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Handler returns the request pipeline without starting a server.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Close releases the database and revocation store without touching the
// HTTP server. Use it when the Application was never Run.
func (app *Application) Close() error {
	return app.closeAll()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bank service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.closeAll(); err != nil {
		return err
	}

	app.logger.Info("bank service stopped")
	return nil
}

// closeAll releases the database and, when it owns a connection, the
// revocation store.
func (app *Application) closeAll() error {
	var errs []error
	if c, ok := app.revoked.(io.Closer); ok {
		if err := c.Close(); err != nil {
			app.logger.Error("error closing revocation store", "error", err)
			errs = append(errs, err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		app.db = nil
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSecurity loads the password pepper and the token signing secret.
func (app *Application) initSecurity() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.passwords = cryptox.NewPasswordHasher(pepper)

	secret, err := LoadSigningSecret(app.cfg.JWTSecret, app.logger)
	if err != nil {
		return err
	}
	app.signingKey = secret
	return nil
}

// initRevocation connects to Redis when configured and otherwise falls back
// to an in-process store, which only works for a single instance.
func (app *Application) initRevocation(ctx context.Context) error {
	if app.cfg.RedisAddr == "" {
		app.logger.Warn("REDIS_ADDR not set, revoked tokens are kept in memory and lost on restart")
		app.revoked = revocation.NewMemoryStore(nil)
		return nil
	}

	rs, err := revocation.NewRedisStore(ctx, revocation.RedisConfig{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		DB:       app.cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to revocation store: %w", err)
	}
	app.revoked = rs
	app.logger.Info("revocation store connected", "addr", app.cfg.RedisAddr)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:           app.signingKey,
		Issuer:           app.cfg.Issuer,
		TTL:              app.cfg.JWTExpiration,
		RevocationPrefix: app.cfg.RevocationPrefix,
	}, app.revoked)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokenService = tokens

	limiterCfg, err := LimiterConfig(app.cfg)
	if err != nil {
		return err
	}
	limiter, err := ratelimit.New(limiterCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limiter: %w", err)
	}
	app.limiter = limiter
	app.logger.Info("rate limiter configured",
		"window", limiter.Window(),
		"endpoints", len(limiterCfg.Table),
	)

	app.authService = &service.AuthService{
		Store:     app.db,
		Tokens:    tokens,
		Passwords: app.passwords,
	}
	app.accountService = &service.AccountService{
		Store:  app.db,
		Policy: service.NewTransactionPolicy(app.cfg.TransactionThreshold),
	}

	sweepers := map[string]service.Sweeper{
		"ratelimit": service.SweeperFunc(func(context.Context) (int, error) {
			return limiter.Sweep(), nil
		}),
	}
	if mem, ok := app.revoked.(*revocation.MemoryStore); ok {
		sweepers["revocation"] = mem
	}
	app.housekeepingService = service.NewHousekeepingService(
		sweepers,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.AccountService = app.accountService
	router.Limiter = app.limiter
	router.TrustProxyHeaders = app.cfg.TrustProxyHeaders
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
