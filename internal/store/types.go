package store

import (
	"errors"

	"boardinghouse-backend/internal/model"
)

// Sentinel errors surfaced to callers. Anything else is a storage
// failure passed through verbatim.
var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrRoomOccupied   = errors.New("room already occupied")
	ErrRoomNotFound   = errors.New("room not found")
)

// TenantMutation reports the outcome of a tenant write together with
// the dependent room write, so callers can see a room claim or release
// that did not happen instead of it being silently swallowed.
type TenantMutation struct {
	Tenant      model.Tenant
	RoomUpdated bool
}

// OccupancySummary holds the room counts behind the occupancy chart.
type OccupancySummary struct {
	Occupied  int64 `json:"occupied"`
	Available int64 `json:"available"`
}

// DashboardCounts holds the entity counts behind the dashboard cards.
type DashboardCounts struct {
	Tenants        int64
	Rooms          int64
	AvailableRooms int64
}
