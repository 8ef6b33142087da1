package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"boardinghouse-backend/config"
	"boardinghouse-backend/internal/mw"
	"boardinghouse-backend/internal/seed"
	"boardinghouse-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, seeder *seed.Service, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	handler := NewHandler(s, seeder, cacheStore)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/tenants", caching, handler.GetTenants)
		api.POST("/tenants", handler.CreateTenant)
		api.DELETE("/tenants/:id", handler.DeleteTenant)
		api.PUT("/tenants/:id/room", handler.MoveTenant)

		api.GET("/rooms", caching, handler.GetRoomSummary)
		api.GET("/rooms/available", caching, handler.GetAvailableRooms)

		api.GET("/stats", caching, handler.GetStats)
		api.GET("/payments", caching, handler.GetMonthlyRevenue)

		api.POST("/seed", handler.RunSeed)
	}

	return r
}
