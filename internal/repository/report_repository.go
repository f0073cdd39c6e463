package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) StateSummary(ctx context.Context, since string, departmentID *int64) (*domain.CheckStateSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN c.state = 'excellent' THEN 1 ELSE 0 END), 0) AS excellent,
			COALESCE(SUM(CASE WHEN c.state = 'good' THEN 1 ELSE 0 END), 0) AS good,
			COALESCE(SUM(CASE WHEN c.state = 'poor' THEN 1 ELSE 0 END), 0) AS poor
		FROM routine_checks c
		LEFT JOIN devices d ON c.device_id = d.id
		WHERE c.check_date >= $1
	`

	var summary domain.CheckStateSummary
	var err error

	if departmentID != nil {
		err = r.db.GetContext(ctx, &summary, query+` AND d.department_id = $2`, since, *departmentID)
	} else {
		err = r.db.GetContext(ctx, &summary, query, since)
	}
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *reportRepository) DepartmentPerformance(ctx context.Context, since string) ([]*domain.DepartmentPerformance, error) {
	query := `
		SELECT
			dep.name,
			COUNT(DISTINCT d.id) AS devices,
			COALESCE(SUM(CASE WHEN c.state = 'excellent' THEN 1 ELSE 0 END), 0) AS excellent,
			COALESCE(SUM(CASE WHEN c.state = 'good' THEN 1 ELSE 0 END), 0) AS good,
			COALESCE(SUM(CASE WHEN c.state = 'poor' THEN 1 ELSE 0 END), 0) AS poor
		FROM departments dep
		LEFT JOIN devices d ON d.department_id = dep.id
		LEFT JOIN routine_checks c ON c.device_id = d.id AND c.check_date >= $1
		GROUP BY dep.id, dep.name
		ORDER BY dep.name
	`

	var performance []*domain.DepartmentPerformance
	if err := r.db.SelectContext(ctx, &performance, query, since); err != nil {
		return nil, err
	}

	return performance, nil
}

func (r *reportRepository) Timeline(ctx context.Context, since string, departmentID *int64) ([]*domain.TimelinePoint, error) {
	deptFilter := ""
	args := []interface{}{since}
	if departmentID != nil {
		deptFilter = ` AND d.department_id = $2`
		args = append(args, *departmentID)
	}

	query := `
		SELECT
			c.check_date AS date,
			COALESCE(SUM(CASE WHEN c.state = 'excellent' THEN 1 ELSE 0 END), 0) AS excellent,
			COALESCE(SUM(CASE WHEN c.state = 'good' THEN 1 ELSE 0 END), 0) AS good,
			COALESCE(SUM(CASE WHEN c.state = 'poor' THEN 1 ELSE 0 END), 0) AS poor
		FROM routine_checks c
		LEFT JOIN devices d ON c.device_id = d.id
		WHERE c.check_date >= $1` + deptFilter + `
		GROUP BY c.check_date
		ORDER BY date
	`

	var timeline []*domain.TimelinePoint
	if err := r.db.SelectContext(ctx, &timeline, query, args...); err != nil {
		return nil, err
	}

	return timeline, nil
}

func (r *reportRepository) DevicesDistribution(ctx context.Context) ([]*domain.DistributionEntry, error) {
	query := `
		SELECT dep.name, COUNT(d.id) AS value
		FROM departments dep
		LEFT JOIN devices d ON d.department_id = dep.id
		GROUP BY dep.id, dep.name
		HAVING COUNT(d.id) > 0
		ORDER BY dep.name
	`

	var distribution []*domain.DistributionEntry
	if err := r.db.SelectContext(ctx, &distribution, query); err != nil {
		return nil, err
	}

	return distribution, nil
}

func (r *reportRepository) Departments(ctx context.Context) ([]*domain.DepartmentRef, error) {
	var departments []*domain.DepartmentRef
	err := r.db.SelectContext(ctx, &departments, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *reportRepository) Counts(ctx context.Context) (devices, checks, departments int, err error) {
	if err = r.db.GetContext(ctx, &devices, `SELECT COUNT(*) FROM devices`); err != nil {
		return
	}
	if err = r.db.GetContext(ctx, &checks, `SELECT COUNT(*) FROM routine_checks`); err != nil {
		return
	}
	err = r.db.GetContext(ctx, &departments, `SELECT COUNT(*) FROM departments`)
	return
}

func (r *reportRepository) RecentChecksByState(ctx context.Context, since string) ([]*domain.StateCount, error) {
	query := `
		SELECT state, COUNT(*) AS count
		FROM routine_checks
		WHERE check_date >= $1
		GROUP BY state
	`

	var counts []*domain.StateCount
	if err := r.db.SelectContext(ctx, &counts, query, since); err != nil {
		return nil, err
	}

	return counts, nil
}
