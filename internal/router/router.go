package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/lucasmarqs/gym-checkin-api/internal/config"
	"github.com/lucasmarqs/gym-checkin-api/internal/handler"
	"github.com/lucasmarqs/gym-checkin-api/internal/middleware"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check,
// used by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration and session routes and applies the
// necessary middleware. Unauthenticated operations live under /v1;
// the profile endpoint requires a valid access token. The rate limiter
// fronts the unauthenticated endpoints so credential stuffing and
// registration floods hit Redis before they hit MySQL.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rdb *redis.Client, rlCfg config.RateLimitConfig) {
	rl := middleware.NewTokenBucket(rlCfg, rdb)

	g := e.Group("/v1", rl)
	g.POST("/users", a.Register)
	g.POST("/sessions", a.Login)
	g.POST("/token/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(a.Cfg.JWTSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleMember))
	auth.GET("/me", a.Me)
}

// RegisterGyms registers gym creation and lookup routes. Creation is
// restricted to ADMIN; searching requires any authenticated user. The
// title search sits behind the Redis response cache because its results
// change rarely and the query space is small.
func RegisterGyms(e *echo.Echo, g *handler.GymHandler, jwtSecret string, rdb *redis.Client, cacheCfg config.CacheConfig) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	auth := e.Group("/v1/gyms")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleMember))
	auth.GET("/search", g.SearchGyms, cache)
	auth.GET("/nearby", g.NearbyGyms)

	admin := e.Group("/v1/gyms")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("", g.CreateGym)
}

// RegisterCheckIns registers the check-in routes. Creating a check-in is
// rate limited per user; validation is ADMIN only.
func RegisterCheckIns(e *echo.Echo, h *handler.CheckInHandler, jwtSecret string, rdb *redis.Client, rlCfg config.RateLimitConfig) {
	rl := middleware.NewTokenBucket(rlCfg, rdb)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleMember))
	auth.POST("/gyms/:gymId/check-ins", h.CreateCheckIn, rl)
	auth.GET("/check-ins/history", h.CheckInHistory)
	auth.GET("/check-ins/metrics", h.CheckInMetrics)

	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.PATCH("/check-ins/:checkInId/validate", h.ValidateCheckIn)
}
