package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRoomSummary handles GET /api/rooms, returning the occupied and
// available room counts behind the occupancy chart.
func (h *Handler) GetRoomSummary(c *gin.Context) {
	summary, err := h.store.Occupancy(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetAvailableRooms handles GET /api/rooms/available, returning the
// sorted numbers of free rooms.
func (h *Handler) GetAvailableRooms(c *gin.Context) {
	numbers, err := h.store.AvailableRoomNumbers(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if numbers == nil {
		numbers = []string{}
	}
	c.JSON(http.StatusOK, numbers)
}
