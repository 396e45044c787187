package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/carrocomidas/pos_backend/internal/core/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/carrocomidas/pos_backend/internal/handlers"
	"github.com/carrocomidas/pos_backend/internal/middleware"
	"github.com/carrocomidas/pos_backend/internal/platform/config"
	"github.com/carrocomidas/pos_backend/internal/repositories/database/sqlite"
	"github.com/carrocomidas/pos_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Carro de Comidas POS API
// @version 1.0
// @description Backend API for the food-cart point of sale.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the embedded database file
	db, err := database.NewSQLiteDB(context.Background(), cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()), slog.String("path", cfg.DBPath))
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Database opened.", slog.String("path", cfg.DBPath))

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		logger.Error("Could not create sqlite driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "sqlite", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Apply all available "up" migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")
	// --- End Database Migrations ---

	// Make the numeric binding tags work on decimal fields
	dto.RegisterDecimalValidation()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("error", err.Error()), slog.String("rate", cfg.RateLimit))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services, then register routes
	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
