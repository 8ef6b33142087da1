package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunSeed handles POST /api/seed. Destructive: replaces all tenants,
// rooms and payments with a fresh demo snapshot.
func (h *Handler) RunSeed(c *gin.Context) {
	result, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"tenants":  result.Tenants,
		"rooms":    result.Rooms,
		"payments": result.Payments,
	})
}
