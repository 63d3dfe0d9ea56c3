package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/core/services"
	"github.com/caixinha-app/caixinha_backend/internal/handlers"
	"github.com/caixinha-app/caixinha_backend/internal/middleware"
	"github.com/caixinha-app/caixinha_backend/internal/platform/config"
	"github.com/caixinha-app/caixinha_backend/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
)

// @title Caixinha Backend API
// @version 1.0
// @description Collective fund backend for the caixinha mobile web client.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All state is in-memory; a restart goes back to the seed dataset.
	store := memory.NewStore()
	if cfg.SeedDemoData {
		funds, debts := memory.SeedDemoData(time.Now())
		store = memory.NewSeededStore(funds, debts)
		logger.Info("Demo dataset seeded", slog.Int("funds", len(funds)), slog.Int("debts", len(debts)))
	}

	repos := &portsrepo.RepositoryProvider{
		FundRepo: memory.NewFundRepository(store),
		DebtRepo: memory.NewDebtRepository(store),
	}
	serviceContainer := services.NewContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
