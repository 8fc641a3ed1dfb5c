package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ratemyprompt/database"
	"ratemyprompt/internal/cache"
	"ratemyprompt/internal/config"
	"ratemyprompt/internal/http-api/handler"
	"ratemyprompt/internal/http-api/middleware"
	"ratemyprompt/internal/http-api/repository"
	"ratemyprompt/internal/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// 2. Connect to the database (runs migrations and the category seed)
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// 3. Aggregate cache; the engine works without Redis, just slower
	aggregates, err := cache.NewAggregateCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, running without aggregate cache", "error", err)
		aggregates = cache.NewNoopCache()
	}
	defer aggregates.Close()

	// 4. Repositories
	promptRepo := repository.NewPromptRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 5. Services
	promptService := service.NewPromptService(promptRepo, categoryRepo, cfg.TrendingWindow)
	ratingService := service.NewRatingService(ratingRepo, promptRepo, aggregates)
	categoryService := service.NewCategoryService(categoryRepo)
	identityService := service.NewIdentityService(userRepo)

	// 6. Handlers
	promptHandler := handler.NewPromptHandler(promptService, cfg.HomeSectionCap)
	ratingHandler := handler.NewRatingHandler(ratingService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	llmHandler := handler.NewLLMHandler()
	webhookHandler := handler.NewWebhookHandler(cfg.WebhookSecret, identityService, logger)

	// 7. Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	{
		promptHandler.RegisterRoutes(api, middleware.OptionalAuth(cfg.SessionSecret, identityService))
		ratingHandler.RegisterRoutes(api, middleware.RequireAuth(cfg.SessionSecret, identityService))
		categoryHandler.RegisterRoutes(api)
		llmHandler.RegisterRoutes(api)
		webhookHandler.RegisterRoutes(api)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from LOG_LEVEL / LOG_FORMAT.
func newLogger(cfg *config.Config) *slog.Logger {
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

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
