package service

import (
	"context"
	"time"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/maintenance"
	"github.com/medtrack/inventory-server/internal/repository"
	customError "github.com/medtrack/inventory-server/pkg/errors"
)

// ReportService assembles the dashboard aggregates. Period boundaries are
// computed once per request so every sub-query sees the same window.
type ReportService struct {
	reportRepo repository.ReportRepository
	checkRepo  repository.CheckRepository
}

func NewReportService(
	reportRepo repository.ReportRepository,
	checkRepo repository.CheckRepository,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		checkRepo:  checkRepo,
	}
}

// periodStart converts a named period into its inclusive start date.
// Unknown values fall back to a month, matching the default.
func periodStart(period string, now time.Time) string {
	start := now
	switch period {
	case domain.PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case domain.PeriodQuarter:
		start = now.AddDate(0, -3, 0)
	case domain.PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}
	return maintenance.Today(start).Format(maintenance.DateLayout)
}

func (s *ReportService) BuildReport(ctx context.Context, period string, departmentID *int64) (*domain.Report, error) {
	since := periodStart(period, time.Now())

	summary, err := s.reportRepo.StateSummary(ctx, since, departmentID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	performance, err := s.reportRepo.DepartmentPerformance(ctx, since)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	timeline, err := s.reportRepo.Timeline(ctx, since, departmentID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	distribution, err := s.reportRepo.DevicesDistribution(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	departments, err := s.reportRepo.Departments(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.Report{
		Summary:               *summary,
		DepartmentPerformance: performance,
		Timeline:              timeline,
		DevicesDistribution:   distribution,
		Departments:           departments,
	}, nil
}

func (s *ReportService) BuildStats(ctx context.Context) (*domain.Stats, error) {
	devices, checks, departments, err := s.reportRepo.Counts(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	since := maintenance.Today(time.Now().AddDate(0, 0, -30)).Format(maintenance.DateLayout)
	recent, err := s.reportRepo.RecentChecksByState(ctx, since)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.Stats{
		Devices:             devices,
		Checks:              checks,
		Departments:         departments,
		RecentChecksByState: recent,
	}, nil
}

func (s *ReportService) ListChecks(ctx context.Context, deviceID *int64) ([]*domain.RoutineCheck, error) {
	checks, err := s.checkRepo.List(ctx, deviceID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return checks, nil
}

func (s *ReportService) CreateCheck(ctx context.Context, req *domain.CheckRequest, createdBy string) (int64, error) {
	checkType := req.CheckType
	if checkType == "" {
		checkType = domain.CheckTypeDaily
	}

	check := &domain.RoutineCheck{
		DeviceID:     req.DeviceID,
		CheckDate:    req.CheckDate,
		State:        req.State,
		Issue:        req.Issue,
		CheckerName:  req.CheckerName,
		SignaturePNG: req.SignaturePNG,
		CheckType:    checkType,
		Criteria:     req.Criteria,
		CreatedBy:    createdBy,
	}

	id, err := s.checkRepo.Create(ctx, check)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return id, nil
}
