// Package main is the entry point for the CityPortal API
package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/civicstack/cityportal/internal/api"
	"github.com/civicstack/cityportal/internal/api/middleware"
	"github.com/civicstack/cityportal/internal/config"
	"github.com/civicstack/cityportal/internal/repository"
	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/internal/session"
	"github.com/civicstack/cityportal/pkg/utils/zaplogger"
)

func main() {
	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logger
	defer zaplogger.Sync()
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// startUpMessage
	zaplogger.Info(config.SingleLine)
	zaplogger.Info(cfg.APIName + " " + cfg.APIVersion)
	zaplogger.Info(config.SingleLine)

	// Pick the storage backend: Postgres when a DSN is configured,
	// process-lifetime memory otherwise
	userRepo, scrapbookRepo := setupRepositories(cfg)

	// Connect Redis, when configured
	redisClient := setupRedis(cfg)

	// Session store
	secret := cfg.SessionSecret
	if secret == "" {
		secret = config.DevSessionSecret
		zaplogger.Warn("CITYPORTAL_SESSION_SECRET not set, using the development default")
	}
	store := session.NewStore(secret)

	// Services
	authService := service.NewAuthService(userRepo)
	scrapbookService := service.NewScrapbookService(scrapbookRepo)
	cityService := service.NewCityService(redisClient, userRepo, scrapbookRepo)

	// Install the seed accounts
	if err := authService.Seed(); err != nil {
		zaplogger.Fatal("failed to seed users", zaplogger.Fields{"error": err.Error()})
	}

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)

	// Setup routes
	if err := api.SetupRoutes(e, cfg, store, authService, scrapbookService, cityService); err != nil {
		zaplogger.Fatal("failed to set up routes", zaplogger.Fields{"error": err.Error()})
	}

	// Setup and start cron jobs
	cronService := service.NewCronService(cfg, redisClient, cityService)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// setupRepositories selects the storage backend from configuration
func setupRepositories(cfg *config.Config) (repository.UserRepository, repository.ScrapbookRepository) {
	if cfg.PostgresDsn == "" {
		zaplogger.Info("no Postgres DSN configured, using in-memory storage")
		return repository.NewMemoryUserRepository(), repository.NewMemoryScrapbookRepository()
	}

	db, err := repository.ConnectPostgres(cfg)
	if err != nil {
		zaplogger.Fatal("failed to connect to Postgres", zaplogger.Fields{"error": err.Error()})
	}
	return repository.NewPostgresUserRepository(db), repository.NewPostgresScrapbookRepository(db)
}

// setupRedis connects to Redis when configured; the portal runs
// without it, recomputing cached data per request
func setupRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		zaplogger.Info("no Redis address configured, caching disabled")
		return nil
	}

	redisClient, err := repository.ConnectRedis(cfg)
	if err != nil {
		zaplogger.Fatal("failed to connect to Redis", zaplogger.Fields{"error": err.Error()})
	}
	zaplogger.Info("Redis initialized")
	return redisClient
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}
	zaplogger.Info("SERVER STARTED ON PORT " + port)
	e.Logger.Fatal(e.Start(":" + port))
}
