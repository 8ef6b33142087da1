package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardinghouse-backend/internal/report"
)

// statsResponse is the dashboard summary card payload.
type statsResponse struct {
	TotalTenants   int64 `json:"totalTenants"`
	TotalRooms     int64 `json:"totalRooms"`
	AvailableRooms int64 `json:"availableRooms"`
	OccupancyRate  int   `json:"occupancyRate"`
	MonthlyRevenue int64 `json:"monthlyRevenue"`
}

// GetStats handles GET /api/stats. MonthlyRevenue is the total for the
// window's final period, the current billing month.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.store.Counts(ctx)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	revenue, err := h.store.RevenueForPeriod(ctx, report.CurrentPeriod(h.window))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		TotalTenants:   counts.Tenants,
		TotalRooms:     counts.Rooms,
		AvailableRooms: counts.AvailableRooms,
		OccupancyRate:  report.OccupancyRate(counts.Rooms, counts.AvailableRooms),
		MonthlyRevenue: revenue,
	})
}
