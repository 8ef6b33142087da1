package model

import "time"

// Payment is one rent payment in the append-only ledger. Room is a
// denormalized copy of the tenant's room number at payment time so
// reports need no join. Month is a three-letter English abbreviation.
type Payment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	TenantID  int64     `gorm:"index;not null" json:"tenant"`
	Room      string    `gorm:"size:16;not null" json:"room"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Month     string    `gorm:"size:8;not null;index:idx_payments_period" json:"month"`
	Year      int       `gorm:"not null;index:idx_payments_period" json:"year"`
	PaidAt    time.Time `gorm:"not null" json:"paidAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
