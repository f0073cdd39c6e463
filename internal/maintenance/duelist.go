package maintenance

import (
	"sort"
	"time"

	"github.com/medtrack/inventory-server/internal/domain"
)

// ListOptions controls filtering and pagination of the due-maintenance list.
// Days, Limit and Offset are clamped, never rejected.
type ListOptions struct {
	Days          int
	Status        string
	IncludeNoDate bool
	Limit         int
	Offset        int
}

// BuildDueList classifies candidates against today's date, keeps the due
// buckets (plus no_date when requested), sorts and paginates. The returned
// total counts the filtered set before pagination so the caller can render
// page counts independently of limit/offset.
//
// Sort order: status rank ascending, then most-overdue first within a bucket.
// no_date entries keep their incoming order.
func BuildDueList(candidates []*domain.DueDevice, today time.Time, opts ListOptions) ([]*domain.DueDevice, int) {
	days := ClampDays(opts.Days)
	limit := ClampLimit(opts.Limit)
	offset := ClampOffset(opts.Offset)

	matched := make([]*domain.DueDevice, 0, len(candidates))
	for _, c := range candidates {
		next := ""
		if c.NextMaintenanceDate != nil {
			next = *c.NextMaintenanceDate
		}
		status, overdueBy := Classify(next, today, days)

		switch status {
		case StatusNotDue:
			continue
		case StatusNoDate:
			if !opts.IncludeNoDate {
				continue
			}
		}
		if opts.Status != "" && status != opts.Status {
			continue
		}

		c.Status = status
		c.DaysOverdue = overdueBy
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		ri, rj := StatusRank(matched[i].Status), StatusRank(matched[j].Status)
		if ri != rj {
			return ri < rj
		}
		if matched[i].Status == StatusNoDate {
			return false
		}
		return matched[i].DaysOverdue > matched[j].DaysOverdue
	})

	total := len(matched)

	if offset >= total {
		return []*domain.DueDevice{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total
}

// Summarize counts every candidate into its due bucket. It is computed over
// the entire fleet, independent of any list filters.
func Summarize(candidates []*domain.DueDevice, today time.Time, days int) domain.MaintenanceSummary {
	days = ClampDays(days)
	summary := domain.MaintenanceSummary{Days: days}

	for _, c := range candidates {
		next := ""
		if c.NextMaintenanceDate != nil {
			next = *c.NextMaintenanceDate
		}
		status, _ := Classify(next, today, days)

		switch status {
		case StatusOverdue:
			summary.Overdue++
		case StatusDueToday:
			summary.DueToday++
		case StatusDueSoon:
			summary.DueSoon++
		case StatusNoDate:
			summary.NoDate++
		}
	}

	summary.TotalDue = summary.Overdue + summary.DueToday + summary.DueSoon
	return summary
}
