package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardinghouse-backend/internal/model"
)

func TestGetStatsEmptyDatabase(t *testing.T) {
	router, _ := setupRouter(t, "api_stats_empty")

	w := doJSON(t, router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats statsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalTenants)
	assert.Zero(t, stats.TotalRooms)
	assert.Zero(t, stats.OccupancyRate, "no rooms must report zero, not divide by zero")
	assert.Zero(t, stats.MonthlyRevenue)
}

func TestGetAvailableRoomsEmpty(t *testing.T) {
	router, _ := setupRouter(t, "api_rooms_empty")

	w := doJSON(t, router, http.MethodGet, "/api/rooms/available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetRoomSummary(t *testing.T) {
	router, db := setupRouter(t, "api_room_summary")
	tenantID := int64(7)
	rooms := []model.Room{
		{RoomNumber: "101", Floor: 1, Status: model.RoomOccupied, TenantID: &tenantID, MonthlyRate: 1800},
		{RoomNumber: "102", Floor: 1, Status: model.RoomAvailable, MonthlyRate: 1800},
		{RoomNumber: "103", Floor: 1, Status: model.RoomAvailable, MonthlyRate: 1800},
	}
	require.NoError(t, db.Create(&rooms).Error)

	w := doJSON(t, router, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"occupied": 1, "available": 2}`, w.Body.String())
}

func TestGetMonthlyRevenueSeriesOrderAndOmission(t *testing.T) {
	router, db := setupRouter(t, "api_payments_series")

	payments := []model.Payment{
		{TenantID: 1, Room: "101", Amount: 5000, Month: "Oct", Year: 2025},
		{TenantID: 1, Room: "101", Amount: 10000, Month: "Aug", Year: 2025},
	}
	require.NoError(t, db.Create(&payments).Error)

	w := doJSON(t, router, http.MethodGet, "/api/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"month":"Aug","revenue":10000},{"month":"Oct","revenue":5000}]`, w.Body.String())
}
