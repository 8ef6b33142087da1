package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"boardinghouse-backend/config"
	"boardinghouse-backend/internal/model"
	"boardinghouse-backend/internal/report"
	"boardinghouse-backend/internal/room"
)

// fallbackRate is used when a tenant references a room that is not in
// the generated inventory.
const fallbackRate int64 = 1800

// Service generates the demo dataset. A run replaces the previous
// snapshot wholesale: all three collections are cleared and repopulated
// inside one transaction, so a failed run leaves the old data intact
// and a concurrent reader never sees a half-built snapshot.
type Service struct {
	db     *gorm.DB
	cfg    config.SeedConfig
	window []report.Period
}

// Result reports how many records a seed run created.
type Result struct {
	Tenants  int `json:"tenants"`
	Rooms    int `json:"rooms"`
	Payments int `json:"payments"`
}

// NewService creates a seed service over the default billing window.
func NewService(db *gorm.DB, cfg config.SeedConfig) *Service {
	return &Service{db: db, cfg: cfg, window: report.DefaultWindow}
}

// Run clears and rebuilds the full dataset, returning the counts.
func (s *Service) Run(ctx context.Context) (Result, error) {
	var result Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []any{&model.Payment{}, &model.Room{}, &model.Tenant{}} {
			if err := wipe.Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear existing data: %w", err)
			}
		}

		tenants := buildTenants()
		if err := tx.Create(&tenants).Error; err != nil {
			return fmt.Errorf("failed to create tenants: %w", err)
		}

		tenantByRoom := make(map[string]*model.Tenant, len(tenants))
		for i := range tenants {
			tenantByRoom[tenants[i].Room] = &tenants[i]
		}

		rooms, rates := buildRooms(s.cfg)
		for i := range rooms {
			if t, ok := tenantByRoom[rooms[i].RoomNumber]; ok {
				rooms[i].Status = model.RoomOccupied
				rooms[i].TenantID = &t.ID
			}
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to create rooms: %w", err)
		}

		payments, err := buildPayments(tenants, rates, s.window)
		if err != nil {
			return err
		}
		if len(payments) > 0 {
			if err := tx.Create(&payments).Error; err != nil {
				return fmt.Errorf("failed to create payments: %w", err)
			}
		}

		result = Result{Tenants: len(tenants), Rooms: len(rooms), Payments: len(payments)}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// buildTenants instantiates the fixture roster, assigning uids in
// creation order starting at 1.
func buildTenants() []model.Tenant {
	tenants := make([]model.Tenant, len(fixtureTenants))
	for i, f := range fixtureTenants {
		tenants[i] = model.Tenant{
			UID:           i + 1,
			Type:          "Regular",
			Gender:        f.Gender,
			Name:          f.Name,
			DateApplied:   f.MoveIn,
			ContractYears: 1,
			Room:          f.Room,
			Status:        f.Status,
			Contact:       f.Contact,
			MoveIn:        f.MoveIn,
		}
	}
	return tenants
}

// buildRooms provisions the fixed inventory, all rooms Available, and
// returns the per-room rate lookup alongside.
func buildRooms(cfg config.SeedConfig) ([]model.Room, map[string]int64) {
	rooms := make([]model.Room, 0, cfg.Floors*cfg.RoomsPerFloor)
	rates := make(map[string]int64, cfg.Floors*cfg.RoomsPerFloor)
	for floor := 1; floor <= cfg.Floors; floor++ {
		for seq := 1; seq <= cfg.RoomsPerFloor; seq++ {
			number := room.FormatNumber(floor, seq)
			rate := room.RateFor(floor)
			rooms = append(rooms, model.Room{
				RoomNumber:  number,
				Floor:       floor,
				Status:      model.RoomAvailable,
				MonthlyRate: rate,
			})
			rates[number] = rate
		}
	}
	return rooms, rates
}

// buildPayments emits one payment per eligible (tenant, period) pair.
// The amount is the tenant's room rate; the paid-at day is random
// within the first five days of the billing month.
func buildPayments(tenants []model.Tenant, rates map[string]int64, window []report.Period) ([]model.Payment, error) {
	firstYear := 0
	if len(window) > 0 {
		firstYear = window[0].Year
	}

	var payments []model.Payment
	for _, p := range window {
		m, err := monthOf(p.Month)
		if err != nil {
			return nil, err
		}
		for _, t := range tenants {
			if !eligible(t.Status, p, firstYear) {
				continue
			}
			rate, ok := rates[t.Room]
			if !ok {
				rate = fallbackRate
			}
			payments = append(payments, model.Payment{
				TenantID: t.ID,
				Room:     t.Room,
				Amount:   rate,
				Month:    p.Month,
				Year:     p.Year,
				PaidAt:   time.Date(p.Year, m, rand.Intn(5)+1, 0, 0, 0, 0, time.UTC),
			})
		}
	}
	return payments, nil
}

// eligible applies the status-dependent billing rules: a Pending tenant
// owes nothing for the window's first calendar year (not yet moved in),
// an Overdue tenant owes nothing beyond it (lapsed payment).
func eligible(status model.TenantStatus, p report.Period, firstYear int) bool {
	switch status {
	case model.StatusPending:
		return p.Year != firstYear
	case model.StatusOverdue:
		return p.Year == firstYear
	default:
		return true
	}
}

func monthOf(label string) (time.Month, error) {
	t, err := time.Parse("Jan", label)
	if err != nil {
		return 0, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	return t.Month(), nil
}
