package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/content-archive-api/internal/api"
	"github.com/content-archive-api/internal/auth"
	"github.com/content-archive-api/internal/config"
	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/identity"
	"github.com/content-archive-api/internal/repository"
	"github.com/content-archive-api/internal/scraper"
	"github.com/content-archive-api/internal/service"
	"github.com/content-archive-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments use the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "json")
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Starting Content Archive API server...")

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize identity resolution
	discord := identity.NewDiscordClient(cfg.Discord)
	resolver, err := identity.NewResolver(discord, repos.User, repos.Account, cfg.Identity.CacheSize, cfg.Identity.ProfileStaleness, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create author resolver")
	}

	// Initialize preview-media extraction
	extractor := scraper.New(scraper.Config{
		Timeout:   cfg.Scrape.Timeout,
		UserAgent: cfg.Scrape.UserAgent,
	}, log)

	admins := auth.NewAdminChecker(cfg.Admin)

	// Initialize services
	services := service.NewServices(repos, resolver, extractor, admins, cfg, log)

	// Initialize router
	router := api.NewRouter(services, db, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
