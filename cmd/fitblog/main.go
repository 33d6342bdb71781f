// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command fitblog runs the FitBlog API server: a localized fitness blog
// with a newsletter subscription endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
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

	"github.com/olegiv/fitblog-go/internal/cache"
	"github.com/olegiv/fitblog-go/internal/config"
	"github.com/olegiv/fitblog-go/internal/content"
	"github.com/olegiv/fitblog-go/internal/handler"
	"github.com/olegiv/fitblog-go/internal/i18n"
	"github.com/olegiv/fitblog-go/internal/mailer"
	"github.com/olegiv/fitblog-go/internal/middleware"
	"github.com/olegiv/fitblog-go/internal/store"
	"github.com/olegiv/fitblog-go/internal/subscription"
	"github.com/olegiv/fitblog-go/internal/version"
)

// Build-time variables injected via -ldflags.
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "FitBlog - Fitness Blog and Newsletter API\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_DB_PATH           SQLite database path (default: ./data/fitblog.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_BASE_URL          Public base URL for sitemap links (default: http://localhost:8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_REDIS_URL         Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_SENDGRID_API_KEY  SendGrid API key; email is logged when unset\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FITBLOG_ADMIN_EMAIL       Address for new-subscriber alerts (optional)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("fitblog %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	version.Set(version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	})

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Initialize i18n system
	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n system initialized", "languages", i18n.SupportedLanguages)

	// Secure cookies are disabled in development so plain-HTTP works
	middleware.InitLanguageCookies(cfg.IsDevelopment())

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Load the article catalog
	articles, err := content.New()
	if err != nil {
		return fmt.Errorf("loading articles: %w", err)
	}
	slog.Info("article catalog loaded", "articles", articles.Count())

	// Initialize cache (Redis with memory fallback)
	cacheConfig := cache.DefaultConfig()
	cacheConfig.RedisURL = cfg.RedisURL
	cacheConfig.Prefix = cfg.CachePrefix
	cacheConfig.DefaultTTL = time.Duration(cfg.CacheTTL) * time.Second
	cacheConfig.MaxSize = cfg.CacheMaxSize
	pageCache := cache.NewCache(cacheConfig, logger)
	defer func() {
		if err := pageCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	// Outbound email
	sender := mailer.NewSender(mailer.Config{
		APIKey:   cfg.SendGridAPIKey,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	}, logger)
	notifier := mailer.NewNotifier(sender)

	// Subscription pipeline
	queries := store.New(db)
	subscriptionService := subscription.NewService(queries, notifier, cfg.AdminEmail, logger)

	// Handlers
	postsHandler := handler.NewPostsHandler(articles, pageCache, logger)
	subscribeHandler := handler.NewSubscribeHandler(subscriptionService)
	healthHandler := handler.NewHealthHandler(db)
	seoHandler := handler.NewSEOHandler(articles, cfg.BaseURL, cfg.IsDevelopment(), logger)

	subscribeLimiter := middleware.NewRateLimiter(cfg.SubscribeRateLimit, time.Minute, cfg.SubscribeRateLimit)
	defer subscribeLimiter.Stop()

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Language())

	r.Route("/api", func(r chi.Router) {
		r.Get("/posts", postsHandler.List)
		r.Get("/posts/{slug}", postsHandler.Get)
		r.Get("/subscribe", subscribeHandler.Status)
		r.With(subscribeLimiter.Middleware).Post("/subscribe", subscribeHandler.Subscribe)
	})

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Get("/sitemap.xml", seoHandler.Sitemap)
	r.Get("/robots.txt", seoHandler.Robots)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
