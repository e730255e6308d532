package api

import (
	"entrytree/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRouter creates and configures the echo router with all routes and middleware.
func SetupRouter(handler *Handler, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))
	e.Use(RequestLogger())

	// Health
	e.GET("/health", handler.HandleHealth)

	// Walkthrough
	e.GET("/api/demo", handler.HandleDemo)

	// Tree operations (body size and rate limited)
	tree := e.Group("/api", middleware.BodyLimit(cfg.MaxBodySize))
	if cfg.RateLimitRPS > 0 {
		tree.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	tree.POST("/render", handler.HandleRender)
	tree.POST("/clone", handler.HandleClone)
	tree.POST("/archive", handler.HandleArchive)

	return e
}
