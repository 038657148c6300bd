// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Hot Ink HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations (idempotent).
//  5. Configure the object store and outgoing mail.
//  6. Wire services and HTTP handlers.
//  7. Start the search indexer and the HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hotink/hotink/internal/api"
	"github.com/hotink/hotink/internal/core/author"
	"github.com/hotink/hotink/internal/core/category"
	"github.com/hotink/hotink/internal/core/document"
	"github.com/hotink/hotink/internal/core/media"
	"github.com/hotink/hotink/internal/core/tag"
	"github.com/hotink/hotink/internal/core/waxing"
	"github.com/hotink/hotink/internal/platform/config"
	"github.com/hotink/hotink/internal/platform/constants"
	"github.com/hotink/hotink/internal/platform/mail"
	"github.com/hotink/hotink/internal/platform/migration"
	pgstore "github.com/hotink/hotink/internal/platform/postgres"
	redisstore "github.com/hotink/hotink/internal/platform/redis"
	"github.com/hotink/hotink/internal/platform/sec"
	"github.com/hotink/hotink/internal/platform/storage"
	"github.com/hotink/hotink/internal/users/account"
	"github.com/hotink/hotink/internal/users/activation"
	"github.com/hotink/hotink/internal/users/auth"
)

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "hotink"), slog.String("version", constants.AppVersion))
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("name", constants.AppName))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("media_storage", cfg.MediaStorageEnabled()),
	)

	// Background work (rate limiter sweeps, search indexer) stops with this.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL and Redis ───────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Object store and mail ──────────────────────────────────────────
	checks := []api.DependencyCheck{
		{Name: "postgres", Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }},
	}

	var blobs media.BlobStore
	if cfg.MediaStorageEnabled() {
		objectStore, err := storage.NewS3Store(startupCtx, storage.Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
		}, log)
		must(log, err, "configure object store")
		blobs = objectStore
		checks = append(checks, api.DependencyCheck{Name: "object_store", Check: objectStore.Ping})
	} else {
		log.Warn("media_uploads_disabled", slog.String("reason", "S3_BUCKET is empty"))
	}

	var mailer mail.Mailer = mail.NewLogMailer(log)
	if cfg.SMTPAddr != "" {
		smtpMailer, err := mail.NewSMTPMailer(cfg.SMTPAddr, cfg.MailFrom, cfg.SMTPUsername, cfg.SMTPPassword)
		must(log, err, "configure smtp mailer")
		mailer = smtpMailer
	}
	dispatcher := mail.NewDispatcher(mailer, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, auth.TokenIssuer)
	must(log, err, "initialize jwt service")

	userRepository := auth.NewUserRepository(pool)
	roleRepository := auth.NewRoleRepository(pool)
	authService := auth.NewService(userRepository, roleRepository, tokenService, log)

	activationService := activation.NewService(
		userRepository,
		roleRepository,
		activation.NewRedisTokenStore(rdb, activation.TokenTTL),
		dispatcher,
		cfg.PublicBaseURL,
		log,
	)

	accountService := account.NewService(account.NewRepository(pool), log)

	authorService := author.NewService(author.NewPostgresRepository(pool), log)
	categoryService := category.NewService(category.NewPostgresRepository(pool), log)

	indexer := document.NewPostgresIndexer(pool)
	documentService := document.NewService(
		document.NewPostgresRepository(pool),
		authorService,
		categoryService,
		indexer,
		log,
	)

	mediaService := media.NewService(media.NewPostgresRepository(pool), blobs, media.ImagingRenderer{}, log)
	waxingService := waxing.NewService(waxing.NewPostgresRepository(pool), indexer, log)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Activation: activation.NewHandler(activationService),
		Account:    account.NewHandler(accountService),
		Document:   document.NewHandler(documentService),
		Author:     author.NewHandler(authorService),
		Category:   category.NewHandler(categoryService),
		Tag:        tag.NewHandler(tag.NewService(tag.NewPostgresRepository(pool), log)),
		Media:      media.NewHandler(mediaService),
		Waxing:     waxing.NewHandler(waxingService),
	}

	// ── 7. Background indexer and HTTP Server ─────────────────────────────
	go document.RunIndexer(rootCtx, indexer, cfg.SearchReindexInterval, log)

	server := api.NewServer(rootCtx, cfg, log, tokenService, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	rootCancel()
	dispatcher.Wait()

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
