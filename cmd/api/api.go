package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/starbank/vendas-api/internal/auth"
	"github.com/starbank/vendas-api/internal/rules"
	"github.com/starbank/vendas-api/internal/store"
)

type application struct {
	config  config
	store   store.Storage
	auth    auth.Provider
	tokens  *auth.TokenManager
	profile rules.Profile
	admins  rules.Allowlist
	logger  *zap.Logger
}

type config struct {
	addr string
	db   dbConfig
	auth authConfig
	// rulesProfile selects the commission/tier strategy at startup:
	// "fixed" or "tiered".
	rulesProfile string
	// adminAllowlist is a comma-separated list of canonical identities
	// granted aggregate views in addition to role=admin accounts.
	adminAllowlist string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

type authConfig struct {
	// provider is "local" (users table + bcrypt) or "identity"
	// (delegated external identity service).
	provider    string
	providerURL string
	jwtSecret   string
	jwtTTL      time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/ticker", app.handleTicker)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.handleRegister)
			r.Post("/login", app.handleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(app.tokens))

			r.Route("/sales", func(r chi.Router) {
				r.Post("/", app.handleCreateSale)
				r.Get("/", app.handleListSales)
				r.Delete("/{id}", app.handleDeleteSale)
			})
			r.Get("/owners", app.handleListOwners)
			r.Get("/dashboard", app.handleDashboard)
			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily-flow", app.handleDailyFlow)
				r.Get("/top", app.handleTopOperations)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.logger.Info("server started", zap.String("addr", app.config.addr))
	return srv.ListenAndServe()
}
