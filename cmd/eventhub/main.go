// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command eventhub runs the EventHub web application: a small event
// management site where admins publish events and visitors register
// for them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/eventhub-go/internal/cache"
	"github.com/olegiv/eventhub-go/internal/config"
	"github.com/olegiv/eventhub-go/internal/handler"
	"github.com/olegiv/eventhub-go/internal/logging"
	"github.com/olegiv/eventhub-go/internal/middleware"
	"github.com/olegiv/eventhub-go/internal/model"
	"github.com/olegiv/eventhub-go/internal/render"
	"github.com/olegiv/eventhub-go/internal/service"
	"github.com/olegiv/eventhub-go/internal/session"
	"github.com/olegiv/eventhub-go/internal/store"
	"github.com/olegiv/eventhub-go/internal/version"
	"github.com/olegiv/eventhub-go/web"
)

// Build-time variables injected via ldflags.
var (
	appVersion   string
	appGitCommit string
	appBuildTime string
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.BoolVar(showVersion, "v", false, "print version information and exit (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Flags:")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), `
Environment variables:
  EVENTHUB_DB_PATH         SQLite database path (default "./data/eventhub.db")
  EVENTHUB_SERVER_HOST     Listen host (default "localhost")
  EVENTHUB_SERVER_PORT     Listen port (default 8080)
  EVENTHUB_ENV             "development" or "production" (default "development")
  EVENTHUB_LOG_LEVEL       debug, info, warn or error (default "info")
  EVENTHUB_REDIS_URL       Optional Redis URL for the events cache
  EVENTHUB_CACHE_PREFIX    Redis key prefix (default "eventhub:")
  EVENTHUB_CACHE_TTL       Cache TTL in seconds (default 3600)
  EVENTHUB_CACHE_MAX_SIZE  Max in-memory cache entries (default 1000)
  EVENTHUB_DO_SEED         Seed demo data on first run (default true)`)
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info{
			Version:   appVersion,
			GitCommit: appGitCommit,
			BuildTime: appBuildTime,
		})
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env file for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(textHandler))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Once the database is ready, warnings and errors also go to the
	// audit_log table.
	slog.SetDefault(slog.New(logging.NewAuditHandler(textHandler, db)))

	storage := store.New(db)
	if cfg.DoSeed {
		if err := storage.Seed(context.Background()); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	eventList, cacheClose := setupEventCache(cfg, storage)
	defer cacheClose()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("templates filesystem: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("static filesystem: %w", err)
	}

	lp := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	authHandler := handler.NewAuthHandler(storage, renderer, sessionManager)
	frontendHandler := handler.NewFrontendHandler(storage, eventList, renderer, sessionManager)
	registerHandler := handler.NewRegisterHandler(storage, renderer)
	adminHandler := handler.NewAdminHandler(storage, renderer)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(sessionManager.LoadAndSave)

	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteExplore, frontendHandler.Explore)
	r.Get(handler.RouteRegister, registerHandler.Form)
	r.Post(handler.RouteRegister, registerHandler.Register)
	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.With(lp.Middleware()).Post(handler.RouteLogin, authHandler.Login)
	r.Get(handler.RouteSignup, authHandler.SignupForm)
	r.Post(handler.RouteSignup, authHandler.Signup)
	r.Post(handler.RouteLogout, authHandler.Logout)
	r.Post(handler.RouteTheme, frontendHandler.ToggleTheme)
	r.Get(handler.RouteHealth, healthHandler.Health)

	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadAdmin(sessionManager, storage))
		r.Get("/", adminHandler.Dashboard)
		r.Get("/events/new", adminHandler.NewEventForm)
		r.Post("/events", adminHandler.CreateEvent)
		r.Get("/stream", adminHandler.Stream)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// setupEventCache builds the event list cache, preferring Redis when
// configured and falling back to the in-memory cache if Redis is
// unreachable. The returned close function stops the cache and the
// invalidation watcher.
func setupEventCache(cfg *config.Config, storage *store.Storage) (*cache.EventListCache, func()) {
	cacheCfg := cache.Config{
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}
	if cfg.UseRedisCache() {
		cacheCfg.RedisURL = cfg.RedisURL
	}

	backend, err := cache.New(cacheCfg)
	if err != nil {
		slog.Warn("redis cache unavailable, using in-memory cache", "error", err)
		cacheCfg.RedisURL = ""
		backend, _ = cache.New(cacheCfg)
	}

	events := service.NewEventService(storage)
	eventList := cache.NewEventListCache(backend, cacheCfg.DefaultTTL, func(ctx context.Context) ([]model.Event, error) {
		return events.All(ctx), nil
	})

	// Drop the cached list whenever the events collection changes so
	// the next request re-reads from the store.
	changes, cancel := storage.Watch(store.KeyEvents)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range changes {
			eventList.Invalidate(context.Background())
		}
	}()

	return eventList, func() {
		cancel()
		<-done
		if err := backend.Close(); err != nil {
			slog.Error("closing cache", "error", err)
		}
	}
}
