package model

import "time"

// RoomStatus is the room's occupancy state. A room is Occupied iff its
// TenantID back-reference is set; the store maintains that invariant.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomOccupied  RoomStatus = "Occupied"
)

// Room represents one rentable room. RoomNumber is the unique key
// ("101".."310"); Floor is derived from its first digit. MonthlyRate is
// fixed per floor and never changes.
type Room struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	RoomNumber  string     `gorm:"uniqueIndex;size:16;not null" json:"roomNumber"`
	Floor       int        `gorm:"not null" json:"floor"`
	Status      RoomStatus `gorm:"size:16;not null" json:"status"`
	TenantID    *int64     `gorm:"index" json:"tenant"`
	MonthlyRate int64      `gorm:"not null" json:"monthlyRate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
