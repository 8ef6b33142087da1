package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"boardinghouse-backend/internal/model"
	"boardinghouse-backend/internal/room"
	"boardinghouse-backend/internal/store"
)

// GetTenants handles GET /api/tenants, returning the roster sorted by uid.
func (h *Handler) GetTenants(c *gin.Context) {
	tenants, err := h.store.ListTenants(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tenants == nil {
		tenants = []model.Tenant{}
	}
	c.JSON(http.StatusOK, tenants)
}

type createTenantRequest struct {
	Name          string             `json:"name" binding:"required"`
	Gender        model.Gender       `json:"gender" binding:"required,oneof=Male Female"`
	Contact       string             `json:"contact" binding:"required"`
	Room          string             `json:"room"`
	Type          string             `json:"type"`
	Signature     string             `json:"signature"`
	Status        model.TenantStatus `json:"status" binding:"omitempty,oneof=Active Pending Overdue"`
	ContractYears int                `json:"contractYears"`
	DateApplied   time.Time          `json:"dateApplied"`
	MoveIn        time.Time          `json:"moveIn"`
}

// CreateTenant handles POST /api/tenants. The response carries the
// created tenant plus whether the requested room was actually claimed.
func (h *Handler) CreateTenant(c *gin.Context) {
	var req createTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant := model.Tenant{
		Name:          req.Name,
		Gender:        req.Gender,
		Contact:       req.Contact,
		Room:          req.Room,
		Type:          req.Type,
		Signature:     req.Signature,
		Status:        req.Status,
		ContractYears: req.ContractYears,
		DateApplied:   req.DateApplied,
		MoveIn:        req.MoveIn,
	}

	mut, err := h.store.CreateTenant(c.Request.Context(), &tenant)
	if err != nil {
		if errors.Is(err, store.ErrRoomOccupied) {
			c.JSON(http.StatusConflict, gin.H{"error": "room " + req.Room + " is already occupied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.invalidate()
	c.JSON(http.StatusCreated, gin.H{
		"tenant":      mut.Tenant,
		"roomUpdated": mut.RoomUpdated,
	})
}

// DeleteTenant handles DELETE /api/tenants/:id, releasing any held room.
func (h *Handler) DeleteTenant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant id"})
		return
	}

	mut, err := h.store.DeleteTenant(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"roomReleased": mut.RoomUpdated,
	})
}

type moveTenantRequest struct {
	Room string `json:"room"`
}

// MoveTenant handles PUT /api/tenants/:id/room, atomically freeing the
// old room and claiming the new one. An empty room moves the tenant out.
func (h *Handler) MoveTenant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant id"})
		return
	}

	var req moveTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Room != "" {
		if _, err := room.ParseNumber(req.Room); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	mut, err := h.store.MoveTenant(c.Request.Context(), id, req.Room)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		case errors.Is(err, store.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room " + req.Room + " not found"})
		case errors.Is(err, store.ErrRoomOccupied):
			c.JSON(http.StatusConflict, gin.H{"error": "room " + req.Room + " is already occupied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{
		"tenant":      mut.Tenant,
		"roomUpdated": mut.RoomUpdated,
	})
}
