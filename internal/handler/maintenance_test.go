package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medtrack/inventory-server/internal/config"
	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/maintenance"
	"github.com/medtrack/inventory-server/internal/service"
	"github.com/medtrack/inventory-server/tests/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newMaintenanceRouter(deviceRepo *mocks.MockDeviceRepository) *mux.Router {
	cfg := &config.Config{
		Maintenance: config.MaintenanceConfig{
			DefaultWindowDays: 7,
			SummaryCacheTTL:   "30s",
		},
	}

	svc := service.NewMaintenanceService(deviceRepo, nil, cfg)
	h := NewMaintenanceHandler(svc, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/api/maintenance/summary", h.GetSummary).Methods("GET")
	router.HandleFunc("/api/maintenance/due", h.ListDue).Methods("GET")
	return router
}

func dueDate(offsetDays int) *string {
	d := maintenance.Today(time.Now()).AddDate(0, 0, offsetDays).Format(maintenance.DateLayout)
	return &d
}

func TestGetSummary_DefaultWindow(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{
			{ID: 1, NextMaintenanceDate: dueDate(-4)},
			{ID: 2, NextMaintenanceDate: dueDate(0)},
			{ID: 3, NextMaintenanceDate: nil},
		}, nil)

	router := newMaintenanceRouter(deviceRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)

	var summary domain.MaintenanceSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 7, summary.Days)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.DueToday)
	assert.Equal(t, 1, summary.NoDate)
	assert.Equal(t, 2, summary.TotalDue)
}

func TestGetSummary_NonNumericDaysFallsBackToDefault(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{}, nil)

	router := newMaintenanceRouter(deviceRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/summary?days=soon", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var summary domain.MaintenanceSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 7, summary.Days)
}

func TestGetSummary_OversizedWindowIsClamped(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{}, nil)

	router := newMaintenanceRouter(deviceRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/summary?days=9999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var summary domain.MaintenanceSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 365, summary.Days)
}

func TestListDue_DefaultsAndOrdering(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{
			{ID: 1, Name: "Monitor", NextMaintenanceDate: dueDate(3)},
			{ID: 2, Name: "Ventilator", NextMaintenanceDate: dueDate(-8)},
			{ID: 3, Name: "Pump", NextMaintenanceDate: dueDate(0)},
		}, nil)

	router := newMaintenanceRouter(deviceRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/due", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var result domain.DueListResult
	require.NoError(t, json.Unmarshal(env.Data, &result))

	require.Len(t, result.Items, 3)
	assert.Equal(t, int64(2), result.Items[0].ID)
	assert.Equal(t, maintenance.StatusOverdue, result.Items[0].Status)
	assert.Equal(t, int64(3), result.Items[1].ID)
	assert.Equal(t, int64(1), result.Items[2].ID)

	assert.Equal(t, 3, result.Pagination.Total)
	assert.Equal(t, 10, result.Pagination.Limit)
	assert.Equal(t, 0, result.Pagination.Offset)
}

func TestListDue_StatusFilterAndNoDateOptIn(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{
			{ID: 1, NextMaintenanceDate: dueDate(-1)},
			{ID: 2, NextMaintenanceDate: nil},
		}, nil)

	router := newMaintenanceRouter(deviceRepo)

	// Without the opt-in flag, a no_date filter matches nothing
	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/due?status=no_date", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var result domain.DueListResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Empty(t, result.Items)

	// With it, only the undated device comes back
	req = httptest.NewRequest(http.MethodGet, "/api/maintenance/due?status=no_date&include_no_date=1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(2), result.Items[0].ID)
	assert.Equal(t, maintenance.StatusNoDate, result.Items[0].Status)
}

func TestListDue_LimitClamped(t *testing.T) {
	candidates := make([]*domain.DueDevice, 0, 60)
	for i := 1; i <= 60; i++ {
		candidates = append(candidates, &domain.DueDevice{ID: int64(i), NextMaintenanceDate: dueDate(-i)})
	}

	deviceRepo := new(mocks.MockDeviceRepository)
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(candidates, nil)

	router := newMaintenanceRouter(deviceRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/due?limit=500", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var result domain.DueListResult
	require.NoError(t, json.Unmarshal(env.Data, &result))

	assert.Len(t, result.Items, 50)
	assert.Equal(t, 50, result.Pagination.Limit)
	assert.Equal(t, 60, result.Pagination.Total)
}
