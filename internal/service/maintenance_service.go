package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/medtrack/inventory-server/internal/config"
	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/maintenance"
	"github.com/medtrack/inventory-server/internal/repository"

	"github.com/redis/go-redis/v9"
)

// MaintenanceService computes the due-status views: the whole-fleet badge
// summary and the filtered/paged due list. Both are read-only and degrade to
// zero/empty results on fetch failures so the notification UI never breaks
// the page; the next periodic refresh self-corrects.
type MaintenanceService struct {
	deviceRepo repository.DeviceRepository
	redis      *redis.Client
	config     *config.Config
}

func NewMaintenanceService(
	deviceRepo repository.DeviceRepository,
	redis *redis.Client,
	config *config.Config,
) *MaintenanceService {
	return &MaintenanceService{
		deviceRepo: deviceRepo,
		redis:      redis,
		config:     config,
	}
}

// DueListParams carries the caller-facing query parameters of the due list.
// Out-of-range values are clamped, never rejected.
type DueListParams struct {
	Days          int
	Limit         int
	Offset        int
	DepartmentID  *int64
	DeviceTypeID  *int64
	Status        string
	IncludeNoDate bool
}

func summaryCacheKey(days int) string {
	return fmt.Sprintf("maintenance:summary:%d", days)
}

// GetSummary returns the whole-fleet bucket counts for the bell badge. The
// result is cached for the configured TTL so rapid open/close toggling of
// the popup does not re-query the fleet.
func (s *MaintenanceService) GetSummary(ctx context.Context, days int) *domain.MaintenanceSummary {
	days = maintenance.ClampDays(days)

	if s.redis != nil {
		data, err := s.redis.Get(ctx, summaryCacheKey(days)).Bytes()
		if err == nil {
			var summary domain.MaintenanceSummary
			if json.Unmarshal(data, &summary) == nil {
				return &summary
			}
		} else if err != redis.Nil {
			log.Printf("maintenance summary cache read failed: %v", err)
		}
	}

	summary := s.computeSummary(ctx, days)

	if s.redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.redis.Set(ctx, summaryCacheKey(days), data, s.config.GetSummaryCacheTTL()).Err(); err != nil {
				log.Printf("maintenance summary cache write failed: %v", err)
			}
		}
	}

	return summary
}

// RefreshSummary recomputes the default-window summary and overwrites the
// cache. Used by the scheduler so the badge stays warm between user visits.
func (s *MaintenanceService) RefreshSummary(ctx context.Context) *domain.MaintenanceSummary {
	days := maintenance.ClampDays(s.config.Maintenance.DefaultWindowDays)
	summary := s.computeSummary(ctx, days)

	if s.redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.redis.Set(ctx, summaryCacheKey(days), data, s.config.GetSummaryCacheTTL()).Err(); err != nil {
				log.Printf("maintenance summary cache write failed: %v", err)
			}
		}
	}

	return summary
}

func (s *MaintenanceService) computeSummary(ctx context.Context, days int) *domain.MaintenanceSummary {
	// Badge counts cover the entire fleet, independent of any list filters
	candidates, err := s.deviceRepo.ListDueCandidates(ctx, nil, nil)
	if err != nil {
		log.Printf("maintenance summary query failed: %v", err)
		return &domain.MaintenanceSummary{Days: days}
	}

	summary := maintenance.Summarize(candidates, maintenance.Today(time.Now()), days)
	return &summary
}

// ListDue returns the filtered, sorted, paginated due-maintenance list. A
// fetch failure logs and yields an empty result rather than an error.
func (s *MaintenanceService) ListDue(ctx context.Context, params DueListParams) *domain.DueListResult {
	days := maintenance.ClampDays(params.Days)
	limit := maintenance.ClampLimit(params.Limit)
	offset := maintenance.ClampOffset(params.Offset)

	result := &domain.DueListResult{
		Items:      []*domain.DueDevice{},
		Pagination: domain.DuePagination{Limit: limit, Offset: offset},
	}

	status := params.Status
	if status != "" && !maintenance.ValidStatusFilter(status) {
		// Unknown filter values match nothing; leniency policy says don't
		// reject
		return result
	}

	candidates, err := s.deviceRepo.ListDueCandidates(ctx, params.DepartmentID, params.DeviceTypeID)
	if err != nil {
		log.Printf("due maintenance list query failed: %v", err)
		return result
	}

	today := maintenance.Today(time.Now())
	items, total := maintenance.BuildDueList(candidates, today, maintenance.ListOptions{
		Days:          days,
		Status:        status,
		IncludeNoDate: params.IncludeNoDate,
		Limit:         limit,
		Offset:        offset,
	})

	result.Items = items
	result.Pagination.Total = total
	return result
}
