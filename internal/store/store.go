package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"boardinghouse-backend/internal/model"
	"boardinghouse-backend/internal/report"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	CreateTenant(ctx context.Context, t *model.Tenant) (TenantMutation, error)
	DeleteTenant(ctx context.Context, id int64) (TenantMutation, error)
	MoveTenant(ctx context.Context, id int64, newRoom string) (TenantMutation, error)
	ListTenants(ctx context.Context) ([]model.Tenant, error)

	AvailableRoomNumbers(ctx context.Context) ([]string, error)
	Occupancy(ctx context.Context) (OccupancySummary, error)
	Counts(ctx context.Context) (DashboardCounts, error)

	RevenueByPeriod(ctx context.Context) ([]report.PeriodRevenue, error)
	RevenueForPeriod(ctx context.Context, p report.Period) (int64, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// CreateTenant assigns the next uid, persists the tenant and claims the
// requested room, all in one transaction. A nonexistent room number is
// tolerated (the tenant is created unhoused, RoomUpdated stays false);
// an occupied room rejects the whole operation with ErrRoomOccupied.
func (s *gormStore) CreateTenant(ctx context.Context, t *model.Tenant) (TenantMutation, error) {
	applyTenantDefaults(t)

	var mut TenantMutation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxUID int
		if err := tx.Model(&model.Tenant{}).Select("COALESCE(MAX(uid), 0)").Scan(&maxUID).Error; err != nil {
			return fmt.Errorf("failed to determine next uid: %w", err)
		}
		t.UID = maxUID + 1

		roomFound := false
		if t.Room != "" {
			var rm model.Room
			err := tx.Where("room_number = ?", t.Room).First(&rm).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// Tolerated: the tenant is still created without a claim.
			case err != nil:
				return fmt.Errorf("failed to look up room %s: %w", t.Room, err)
			case rm.Status == model.RoomOccupied:
				return ErrRoomOccupied
			default:
				roomFound = true
			}
		}

		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if roomFound {
			res := tx.Model(&model.Room{}).Where("room_number = ?", t.Room).
				Updates(map[string]any{"status": model.RoomOccupied, "tenant_id": t.ID})
			if res.Error != nil {
				return fmt.Errorf("failed to claim room %s: %w", t.Room, res.Error)
			}
			mut.RoomUpdated = res.RowsAffected > 0
		}

		mut.Tenant = *t
		return nil
	})
	if err != nil {
		return TenantMutation{}, err
	}
	return mut, nil
}

// DeleteTenant removes a tenant and releases any room it held. The room
// update is guarded on the back-reference so a room held by somebody
// else is never freed by mistake.
func (s *gormStore) DeleteTenant(ctx context.Context, id int64) (TenantMutation, error) {
	var mut TenantMutation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t model.Tenant
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return fmt.Errorf("failed to look up tenant %d: %w", id, err)
		}

		if err := tx.Delete(&model.Tenant{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete tenant %d: %w", id, err)
		}

		if t.Room != "" {
			res := tx.Model(&model.Room{}).Where("room_number = ? AND tenant_id = ?", t.Room, t.ID).
				Updates(map[string]any{"status": model.RoomAvailable, "tenant_id": nil})
			if res.Error != nil {
				return fmt.Errorf("failed to release room %s: %w", t.Room, res.Error)
			}
			mut.RoomUpdated = res.RowsAffected > 0
		}

		mut.Tenant = t
		return nil
	})
	if err != nil {
		return TenantMutation{}, err
	}
	return mut, nil
}

// MoveTenant reassigns a tenant to a different room atomically: the old
// room is released and the new one claimed in the same transaction. An
// empty newRoom moves the tenant out without deleting the record.
func (s *gormStore) MoveTenant(ctx context.Context, id int64, newRoom string) (TenantMutation, error) {
	var mut TenantMutation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t model.Tenant
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return fmt.Errorf("failed to look up tenant %d: %w", id, err)
		}

		if newRoom == t.Room {
			mut.Tenant = t
			return nil
		}

		if newRoom != "" {
			var rm model.Room
			if err := tx.Where("room_number = ?", newRoom).First(&rm).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRoomNotFound
				}
				return fmt.Errorf("failed to look up room %s: %w", newRoom, err)
			}
			if rm.Status == model.RoomOccupied {
				return ErrRoomOccupied
			}
		}

		if t.Room != "" {
			res := tx.Model(&model.Room{}).Where("room_number = ? AND tenant_id = ?", t.Room, t.ID).
				Updates(map[string]any{"status": model.RoomAvailable, "tenant_id": nil})
			if res.Error != nil {
				return fmt.Errorf("failed to release room %s: %w", t.Room, res.Error)
			}
		}

		if newRoom != "" {
			res := tx.Model(&model.Room{}).Where("room_number = ?", newRoom).
				Updates(map[string]any{"status": model.RoomOccupied, "tenant_id": t.ID})
			if res.Error != nil {
				return fmt.Errorf("failed to claim room %s: %w", newRoom, res.Error)
			}
		}

		if err := tx.Model(&model.Tenant{}).Where("id = ?", t.ID).Update("room", newRoom).Error; err != nil {
			return fmt.Errorf("failed to update tenant %d: %w", t.ID, err)
		}

		t.Room = newRoom
		mut.Tenant = t
		mut.RoomUpdated = true
		return nil
	})
	if err != nil {
		return TenantMutation{}, err
	}
	return mut, nil
}

// ListTenants returns the full roster ordered by uid.
func (s *gormStore) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	if err := s.db.WithContext(ctx).Order("uid ASC").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// AvailableRoomNumbers returns the numbers of all free rooms, sorted.
func (s *gormStore) AvailableRoomNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	if err := s.db.WithContext(ctx).Model(&model.Room{}).
		Where("status = ?", model.RoomAvailable).
		Order("room_number ASC").
		Pluck("room_number", &numbers).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return numbers, nil
}

// Occupancy returns the occupied/available room counts.
func (s *gormStore) Occupancy(ctx context.Context) (OccupancySummary, error) {
	var sum OccupancySummary
	db := s.db.WithContext(ctx)
	if err := db.Model(&model.Room{}).Where("status = ?", model.RoomOccupied).Count(&sum.Occupied).Error; err != nil {
		return OccupancySummary{}, fmt.Errorf("failed to count occupied rooms: %w", err)
	}
	if err := db.Model(&model.Room{}).Where("status = ?", model.RoomAvailable).Count(&sum.Available).Error; err != nil {
		return OccupancySummary{}, fmt.Errorf("failed to count available rooms: %w", err)
	}
	return sum, nil
}

// Counts returns the entity counts for the dashboard cards.
func (s *gormStore) Counts(ctx context.Context) (DashboardCounts, error) {
	var counts DashboardCounts
	db := s.db.WithContext(ctx)
	if err := db.Model(&model.Tenant{}).Count(&counts.Tenants).Error; err != nil {
		return DashboardCounts{}, fmt.Errorf("failed to count tenants: %w", err)
	}
	if err := db.Model(&model.Room{}).Count(&counts.Rooms).Error; err != nil {
		return DashboardCounts{}, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := db.Model(&model.Room{}).Where("status = ?", model.RoomAvailable).Count(&counts.AvailableRooms).Error; err != nil {
		return DashboardCounts{}, fmt.Errorf("failed to count available rooms: %w", err)
	}
	return counts, nil
}

// RevenueByPeriod reduces the payment ledger to one summed amount per
// (month, year) group.
func (s *gormStore) RevenueByPeriod(ctx context.Context) ([]report.PeriodRevenue, error) {
	var groups []report.PeriodRevenue
	if err := s.db.WithContext(ctx).Model(&model.Payment{}).
		Select("month AS month, year AS year, SUM(amount) AS revenue").
		Group("month").Group("year").
		Scan(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	return groups, nil
}

// RevenueForPeriod sums the payments of a single billing period,
// zero when none match.
func (s *gormStore) RevenueForPeriod(ctx context.Context, p report.Period) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("month = ? AND year = ?", p.Month, p.Year).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum payments for %s %d: %w", p.Month, p.Year, err)
	}
	return total, nil
}

func applyTenantDefaults(t *model.Tenant) {
	now := time.Now()
	if t.Type == "" {
		t.Type = "Regular"
	}
	if t.Status == "" {
		t.Status = model.StatusActive
	}
	if t.ContractYears <= 0 {
		t.ContractYears = 1
	}
	if t.DateApplied.IsZero() {
		t.DateApplied = now
	}
	if t.MoveIn.IsZero() {
		t.MoveIn = now
	}
}
