// Package api contains the API routes for the CityPortal API
package api

import (
	"fmt"
	"net/url"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/civicstack/cityportal/internal/api/handlers"
	"github.com/civicstack/cityportal/internal/api/middleware"
	"github.com/civicstack/cityportal/internal/config"
	"github.com/civicstack/cityportal/internal/service"
	"github.com/civicstack/cityportal/internal/session"
	"github.com/civicstack/cityportal/pkg/utils/response"
	"github.com/civicstack/cityportal/pkg/utils/zaplogger"
)

// SetupRoutes configures the routes for the API
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	store *session.Store,
	authService *service.AuthService,
	scrapbookService *service.ScrapbookService,
	cityService *service.CityService,
) error {
	requireAuth := middleware.RequireAuth(store, authService)
	requireAdmin := middleware.RequireAdmin(store, authService)

	// Create a group for all API routes
	api := e.Group("/api")

	// Index route
	api.GET("/", indexRoute(cfg))

	// Auth routes
	authHandler := handlers.NewAuthHandler(store, authService)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/user", authHandler.CurrentUser)
	api.GET("/users", authHandler.ListUsers, requireAdmin)

	// Scrapbook routes; GET /:id resolves the session itself because
	// public entries are open to anonymous callers
	scrapbookHandler := handlers.NewScrapbookHandler(store, authService, scrapbookService)
	scrapbookGroup := api.Group("/scrapbook")
	scrapbookGroup.GET("/public", scrapbookHandler.ListPublic)
	scrapbookGroup.GET("/my-entries", scrapbookHandler.MyEntries, requireAuth)
	scrapbookGroup.GET("/:id", scrapbookHandler.Get)
	scrapbookGroup.POST("", scrapbookHandler.Create, requireAuth)
	scrapbookGroup.PUT("/:id", scrapbookHandler.Update, requireAuth)
	scrapbookGroup.DELETE("/:id", scrapbookHandler.Delete, requireAuth)

	// City data routes (open)
	cityHandler := handlers.NewCityHandler(cityService)
	api.GET("/traffic", cityHandler.Traffic)
	api.GET("/healthcare", cityHandler.Healthcare)
	api.GET("/education", cityHandler.Education)
	api.GET("/safety", cityHandler.Safety)
	api.GET("/tourism", cityHandler.Tourism)
	api.GET("/map", cityHandler.Map)
	api.GET("/onboarding", cityHandler.Onboarding)

	// Admin console routes
	adminHandler := handlers.NewAdminHandler(cityService)
	adminGroup := api.Group("/admin", requireAdmin)
	adminGroup.GET("/settings", adminHandler.Settings)
	adminGroup.GET("/metrics", adminHandler.Metrics)

	// Reverse proxy to the civic backend, when configured
	if cfg.BackendURL != "" {
		if err := setupProxy(e, cfg.BackendURL); err != nil {
			return err
		}
	}

	return nil
}

// setupProxy forwards /api/civic/* to the external backend with the
// prefix stripped
func setupProxy(e *echo.Echo, backendURL string) error {
	target, err := url.Parse(backendURL)
	if err != nil {
		return fmt.Errorf("invalid backend url: %v", err)
	}

	proxyGroup := e.Group("/api/civic")
	proxyGroup.Use(echomw.ProxyWithConfig(echomw.ProxyConfig{
		Balancer: echomw.NewRoundRobinBalancer([]*echomw.ProxyTarget{
			{URL: target},
		}),
		Rewrite: map[string]string{
			"/api/civic/*": "/$1",
		},
	}))

	zaplogger.Info("proxying /api/civic to backend", zaplogger.Fields{
		"target": target.Host,
	})
	return nil
}

// indexRoute sets up the index route for the API
func indexRoute(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		message := fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion)
		return response.SuccessResponse(c, message)
	}
}
