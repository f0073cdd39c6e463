package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medtrack/inventory-server/internal/config"
	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/maintenance"
	"github.com/medtrack/inventory-server/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Maintenance: config.MaintenanceConfig{
			DefaultWindowDays: 7,
			SummaryCacheTTL:   "30s",
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func dateOffset(days int) *string {
	d := maintenance.Today(time.Now()).AddDate(0, 0, days).Format(maintenance.DateLayout)
	return &d
}

func TestGetSummary_CountsBuckets(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	candidates := []*domain.DueDevice{
		{ID: 1, Name: "Ventilator", NextMaintenanceDate: dateOffset(-10)},
		{ID: 2, Name: "Infusion Pump", NextMaintenanceDate: dateOffset(0)},
		{ID: 3, Name: "Defibrillator", NextMaintenanceDate: dateOffset(3)},
		{ID: 4, Name: "Monitor", NextMaintenanceDate: dateOffset(30)},
		{ID: 5, Name: "Scale", NextMaintenanceDate: nil},
		{ID: 6, Name: "Pump", NextMaintenanceDate: strPtr("not-a-date")},
	}
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(candidates, nil)

	summary := svc.GetSummary(context.Background(), 7)

	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.DueToday)
	assert.Equal(t, 1, summary.DueSoon)
	assert.Equal(t, 2, summary.NoDate)
	assert.Equal(t, 3, summary.TotalDue)
	assert.Equal(t, 7, summary.Days)
	deviceRepo.AssertExpectations(t)
}

func TestGetSummary_ClampsWindow(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{}, nil)

	summary := svc.GetSummary(context.Background(), -5)
	assert.Equal(t, 1, summary.Days)

	summary = svc.GetSummary(context.Background(), 9999)
	assert.Equal(t, 365, summary.Days)
}

func TestGetSummary_RepoFailureYieldsZeroCounts(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(nil, errors.New("connection refused"))

	summary := svc.GetSummary(context.Background(), 7)

	assert.Equal(t, 0, summary.Overdue)
	assert.Equal(t, 0, summary.DueToday)
	assert.Equal(t, 0, summary.DueSoon)
	assert.Equal(t, 0, summary.NoDate)
	assert.Equal(t, 0, summary.TotalDue)
	assert.Equal(t, 7, summary.Days)
}

func TestRefreshSummary_UsesDefaultWindow(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return([]*domain.DueDevice{}, nil)

	summary := svc.RefreshSummary(context.Background())
	assert.Equal(t, 7, summary.Days)
}

func TestListDue_SortsAndPaginates(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	candidates := []*domain.DueDevice{
		{ID: 1, Name: "Monitor", NextMaintenanceDate: dateOffset(5)},
		{ID: 2, Name: "Ventilator", NextMaintenanceDate: dateOffset(-2)},
		{ID: 3, Name: "Pump", NextMaintenanceDate: dateOffset(0)},
		{ID: 4, Name: "Scale", NextMaintenanceDate: dateOffset(90)},
	}
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(candidates, nil)

	result := svc.ListDue(context.Background(), DueListParams{Days: 7, Limit: 10})

	assert.Equal(t, 3, result.Pagination.Total)
	assert.Len(t, result.Items, 3)
	assert.Equal(t, int64(2), result.Items[0].ID)
	assert.Equal(t, maintenance.StatusOverdue, result.Items[0].Status)
	assert.Equal(t, 2, result.Items[0].DaysOverdue)
	assert.Equal(t, int64(3), result.Items[1].ID)
	assert.Equal(t, maintenance.StatusDueToday, result.Items[1].Status)
	assert.Equal(t, int64(1), result.Items[2].ID)
	assert.Equal(t, maintenance.StatusDueSoon, result.Items[2].Status)
	assert.Equal(t, -5, result.Items[2].DaysOverdue)
}

func TestListDue_PaginationTotalIsUnpaged(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	candidates := []*domain.DueDevice{
		{ID: 1, NextMaintenanceDate: dateOffset(-3)},
		{ID: 2, NextMaintenanceDate: dateOffset(-2)},
		{ID: 3, NextMaintenanceDate: dateOffset(-1)},
	}
	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(candidates, nil)

	result := svc.ListDue(context.Background(), DueListParams{Days: 7, Limit: 2, Offset: 2})

	assert.Equal(t, 3, result.Pagination.Total)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(3), result.Items[0].ID)
	assert.Equal(t, 2, result.Pagination.Limit)
	assert.Equal(t, 2, result.Pagination.Offset)
}

func TestListDue_UnknownStatusFilterMatchesNothing(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	result := svc.ListDue(context.Background(), DueListParams{Days: 7, Limit: 10, Status: "exploded"})

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Pagination.Total)
	deviceRepo.AssertNotCalled(t, "ListDueCandidates")
}

func TestListDue_RepoFailureYieldsEmptyList(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	deviceRepo.On("ListDueCandidates", mock.Anything, (*int64)(nil), (*int64)(nil)).
		Return(nil, errors.New("connection refused"))

	result := svc.ListDue(context.Background(), DueListParams{Days: 7, Limit: 10})

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Pagination.Total)
}

func TestListDue_PassesScopeFiltersToRepo(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	svc := NewMaintenanceService(deviceRepo, nil, testConfig())

	deptID := int64(4)
	typeID := int64(9)
	deviceRepo.On("ListDueCandidates", mock.Anything, &deptID, &typeID).
		Return([]*domain.DueDevice{}, nil)

	svc.ListDue(context.Background(), DueListParams{
		Days:         7,
		Limit:        10,
		DepartmentID: &deptID,
		DeviceTypeID: &typeID,
	})

	deviceRepo.AssertExpectations(t)
}
