package service

import (
	"context"
	"testing"
	"time"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		period   string
		expected string
	}{
		{domain.PeriodWeek, "2024-06-08"},
		{domain.PeriodMonth, "2024-05-15"},
		{domain.PeriodQuarter, "2024-03-15"},
		{domain.PeriodYear, "2023-06-15"},
		{"", "2024-05-15"},
		{"fortnight", "2024-05-15"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, periodStart(tt.period, now), "period %q", tt.period)
	}
}

func TestBuildReport_AssemblesAllSections(t *testing.T) {
	reportRepo := new(mocks.MockReportRepository)
	checkRepo := new(mocks.MockCheckRepository)
	svc := NewReportService(reportRepo, checkRepo)

	reportRepo.On("StateSummary", mock.Anything, mock.AnythingOfType("string"), (*int64)(nil)).
		Return(&domain.CheckStateSummary{Excellent: 5, Good: 3, Poor: 1}, nil)
	reportRepo.On("DepartmentPerformance", mock.Anything, mock.AnythingOfType("string")).
		Return([]*domain.DepartmentPerformance{}, nil)
	reportRepo.On("Timeline", mock.Anything, mock.AnythingOfType("string"), (*int64)(nil)).
		Return([]*domain.TimelinePoint{}, nil)
	reportRepo.On("DevicesDistribution", mock.Anything).
		Return([]*domain.DistributionEntry{}, nil)
	reportRepo.On("Departments", mock.Anything).
		Return([]*domain.DepartmentRef{}, nil)

	report, err := svc.BuildReport(context.Background(), domain.PeriodMonth, nil)

	require.NoError(t, err)
	assert.Equal(t, 5, report.Summary.Excellent)
	reportRepo.AssertExpectations(t)
}

func TestCreateCheck_DefaultsToDailyType(t *testing.T) {
	reportRepo := new(mocks.MockReportRepository)
	checkRepo := new(mocks.MockCheckRepository)
	svc := NewReportService(reportRepo, checkRepo)

	checkRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.RoutineCheck) bool {
		return c.CheckType == domain.CheckTypeDaily && c.CreatedBy == "tech-2"
	})).Return(int64(31), nil)

	id, err := svc.CreateCheck(context.Background(), &domain.CheckRequest{
		DeviceID:    4,
		CheckDate:   "2024-06-15",
		State:       domain.CheckStateGood,
		CheckerName: "A. Smith",
	}, "tech-2")

	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
}
