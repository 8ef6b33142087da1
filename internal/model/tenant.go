package model

import "time"

// Gender is the tenant's registered gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// TenantStatus is the tenant's lifecycle status.
type TenantStatus string

const (
	StatusActive  TenantStatus = "Active"
	StatusPending TenantStatus = "Pending"
	StatusOverdue TenantStatus = "Overdue"
)

// Tenant represents one boarder. UID is the human-facing sequence number
// assigned at creation time; Room holds the occupied room number and is
// empty for tenants without a room.
type Tenant struct {
	ID            int64        `gorm:"primaryKey" json:"id"`
	UID           int          `gorm:"uniqueIndex;not null" json:"uid"`
	Type          string       `gorm:"size:64;not null" json:"type"`
	Gender        Gender       `gorm:"size:16;not null" json:"gender"`
	Name          string       `gorm:"size:256;not null" json:"name"`
	Signature     string       `gorm:"size:256" json:"signature"`
	DateApplied   time.Time    `gorm:"not null" json:"dateApplied"`
	ContractYears int          `gorm:"not null" json:"contractYears"`
	Room          string       `gorm:"size:16;index" json:"room"`
	Status        TenantStatus `gorm:"size:16;not null" json:"status"`
	Contact       string       `gorm:"size:64" json:"contact"`
	MoveIn        time.Time    `gorm:"not null" json:"moveIn"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
