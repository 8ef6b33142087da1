package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardinghouse-backend/internal/report"
)

// GetMonthlyRevenue handles GET /api/payments, returning the revenue
// series reindexed onto the billing window in chronological order.
// Periods without revenue are omitted.
func (h *Handler) GetMonthlyRevenue(c *gin.Context) {
	groups, err := h.store.RevenueByPeriod(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report.Reindex(groups, h.window))
}
