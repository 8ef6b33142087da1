package api

import (
	"github.com/patrickmn/go-cache"

	"boardinghouse-backend/internal/report"
	"boardinghouse-backend/internal/seed"
	"boardinghouse-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	seeder *seed.Service
	cache  *cache.Cache
	window []report.Period
}

// NewHandler creates a new API handler reporting over the default
// billing window.
func NewHandler(s store.Store, seeder *seed.Service, responseCache *cache.Cache) *Handler {
	return &Handler{
		store:  s,
		seeder: seeder,
		cache:  responseCache,
		window: report.DefaultWindow,
	}
}

// invalidate drops all cached GET responses after a mutation.
func (h *Handler) invalidate() {
	if h.cache != nil {
		h.cache.Flush()
	}
}
