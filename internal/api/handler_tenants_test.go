package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"boardinghouse-backend/config"
	"boardinghouse-backend/internal/model"
	"boardinghouse-backend/internal/seed"
	"boardinghouse-backend/internal/store"
)

func setupRouter(t *testing.T, name string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	require.NoError(t, db.AutoMigrate(&model.Tenant{}, &model.Room{}, &model.Payment{}))

	appStore := store.NewGormStore(db)
	seeder := seed.NewService(db, config.SeedConfig{Floors: 3, RoomsPerFloor: 10})
	// Generous limits so tests never trip the rate limiter.
	cfg := &config.ServerConfig{RateLimitPerSec: 10000, RateLimitBurst: 10000, CacheTTLSeconds: 1}

	return NewRouter(appStore, seeder, cfg), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateTenantEndpoint(t *testing.T) {
	router, db := setupRouter(t, "api_create")
	require.NoError(t, db.Create(&model.Room{RoomNumber: "101", Floor: 1, Status: model.RoomAvailable, MonthlyRate: 1800}).Error)

	w := doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
		"name":    "Juan dela Cruz",
		"gender":  "Male",
		"contact": "0917-123-4567",
		"room":    "101",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["roomUpdated"])
	tenant := body["tenant"].(map[string]any)
	assert.Equal(t, float64(1), tenant["uid"])
	assert.Equal(t, "Regular", tenant["type"])
	assert.Equal(t, "Active", tenant["status"])

	var rm model.Room
	require.NoError(t, db.Where("room_number = ?", "101").First(&rm).Error)
	assert.Equal(t, model.RoomOccupied, rm.Status)
}

func TestCreateTenantValidation(t *testing.T) {
	router, _ := setupRouter(t, "api_validation")

	testCases := []struct {
		name string
		body gin.H
	}{
		{"Missing name", gin.H{"gender": "Male", "contact": "0917-123-4567"}},
		{"Missing contact", gin.H{"name": "Juan dela Cruz", "gender": "Male"}},
		{"Invalid gender", gin.H{"name": "Juan dela Cruz", "gender": "Other", "contact": "0917-123-4567"}},
		{"Invalid status", gin.H{"name": "Juan dela Cruz", "gender": "Male", "contact": "0917-123-4567", "status": "Evicted"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/tenants", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateTenantOccupiedRoomConflict(t *testing.T) {
	router, db := setupRouter(t, "api_conflict")
	require.NoError(t, db.Create(&model.Room{RoomNumber: "101", Floor: 1, Status: model.RoomAvailable, MonthlyRate: 1800}).Error)

	w := doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
		"name": "Juan dela Cruz", "gender": "Male", "contact": "0917-123-4567", "room": "101",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
		"name": "Maria Santos", "gender": "Female", "contact": "0918-234-5678", "room": "101",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTenantUnknownRoomStillCreates(t *testing.T) {
	router, _ := setupRouter(t, "api_unknown_room")

	w := doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
		"name": "Juan dela Cruz", "gender": "Male", "contact": "0917-123-4567", "room": "999",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["roomUpdated"], "missing room is reported, not hidden")
}

func TestDeleteTenantEndpoint(t *testing.T) {
	router, db := setupRouter(t, "api_delete")
	require.NoError(t, db.Create(&model.Room{RoomNumber: "101", Floor: 1, Status: model.RoomAvailable, MonthlyRate: 1800}).Error)

	w := doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
		"name": "Juan dela Cruz", "gender": "Male", "contact": "0917-123-4567", "room": "101",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	id := int64(body["tenant"].(map[string]any)["id"].(float64))

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tenants/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["roomReleased"])

	var rm model.Room
	require.NoError(t, db.Where("room_number = ?", "101").First(&rm).Error)
	assert.Equal(t, model.RoomAvailable, rm.Status)
	assert.Nil(t, rm.TenantID)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tenants/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveTenantEndpoint(t *testing.T) {
	router, db := setupRouter(t, "api_move")
	require.NoError(t, db.Create(&model.Room{RoomNumber: "101", Floor: 1, Status: model.RoomAvailable, MonthlyRate: 1800}).Error)
	require.NoError(t, db.Create(&model.Room{RoomNumber: "201", Floor: 2, Status: model.RoomAvailable, MonthlyRate: 2000}).Error)

	w := doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
		"name": "Juan dela Cruz", "gender": "Male", "contact": "0917-123-4567", "room": "101",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decodeBody(t, w)["tenant"].(map[string]any)["id"].(float64))

	t.Run("Malformed room number", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/tenants/%d/room", id), gin.H{"room": "1A1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown room", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/tenants/%d/room", id), gin.H{"room": "999"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Successful move", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/tenants/%d/room", id), gin.H{"room": "201"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var old, claimed model.Room
		require.NoError(t, db.Where("room_number = ?", "101").First(&old).Error)
		require.NoError(t, db.Where("room_number = ?", "201").First(&claimed).Error)
		assert.Equal(t, model.RoomAvailable, old.Status)
		assert.Equal(t, model.RoomOccupied, claimed.Status)
	})
}

func TestGetTenantsSortedByUID(t *testing.T) {
	router, _ := setupRouter(t, "api_roster")

	for _, name := range []string{"Juan dela Cruz", "Maria Santos"} {
		w := doJSON(t, router, http.MethodPost, "/api/tenants", gin.H{
			"name": name, "gender": "Male", "contact": "0900-000-0000",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/tenants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tenants []model.Tenant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenants))
	require.Len(t, tenants, 2)
	assert.Equal(t, 1, tenants[0].UID)
	assert.Equal(t, 2, tenants[1].UID)
}
