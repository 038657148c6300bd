// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the chi router.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hotink/hotink/internal/core/author"
	"github.com/hotink/hotink/internal/core/category"
	"github.com/hotink/hotink/internal/core/document"
	"github.com/hotink/hotink/internal/core/media"
	"github.com/hotink/hotink/internal/core/tag"
	"github.com/hotink/hotink/internal/core/waxing"
	"github.com/hotink/hotink/internal/platform/config"
	"github.com/hotink/hotink/internal/platform/constants"
	"github.com/hotink/hotink/internal/platform/middleware"
	"github.com/hotink/hotink/internal/platform/sec"
	"github.com/hotink/hotink/internal/users/account"
	"github.com/hotink/hotink/internal/users/activation"
	"github.com/hotink/hotink/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when all dependencies are healthy.
	Readiness http.HandlerFunc

	Auth       *auth.Handler
	Activation *activation.Handler
	Account    *account.Handler

	Document *document.Handler
	Author   *author.Handler
	Category *category.Handler
	Tag      *tag.Handler
	Media    *media.Handler
	Waxing   *waxing.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Activation links arrive by email, before the user can log in.
		api.Route("/user-activations", h.Activation.RegisterPublicRoutes)

		// Everything else belongs to exactly one account.
		api.Route("/accounts/{accountID}", func(scoped chi.Router) {
			scoped.Use(middleware.RequireAccount)

			h.Account.RegisterRoutes(scoped)
			scoped.Route("/documents", h.Document.RegisterRoutes)
			scoped.Route("/authors", h.Author.RegisterRoutes)
			scoped.Route("/categories", h.Category.RegisterRoutes)
			scoped.Route("/tags", h.Tag.RegisterRoutes)
			scoped.Route("/mediafiles", h.Media.RegisterRoutes)
			scoped.Route("/waxings", h.Waxing.RegisterRoutes)

			scoped.Route("/user-activations", func(managers chi.Router) {
				managers.Use(middleware.RequireRole(sec.RoleManager))
				h.Activation.RegisterRoutes(managers)
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
