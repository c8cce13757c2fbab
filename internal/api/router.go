package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aquarelle/artmarket/internal/api/handler"
	"github.com/aquarelle/artmarket/internal/api/middleware"
	"github.com/aquarelle/artmarket/internal/core/domain"
	"github.com/aquarelle/artmarket/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// db and rdb may be nil when the in-memory store is active; the readiness
// probe then skips them.
func NewRouter(catalog ports.CatalogService, sessions ports.SessionService, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("artmarket"))

	// --- Dependencies ---
	artworkHandler := handler.NewArtworkHandler(catalog)
	artistHandler := handler.NewArtistHandler(catalog)
	authHandler := handler.NewAuthHandler(sessions)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Catalog routes ---
	v1 := e.Group("/v1")
	v1.GET("/artworks", artworkHandler.List)
	v1.GET("/artworks/:id", artworkHandler.Get)
	v1.POST("/artworks", artworkHandler.Create, authMiddleware, middleware.RBAC(string(domain.RoleArtist)))
	v1.GET("/artists", artistHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
