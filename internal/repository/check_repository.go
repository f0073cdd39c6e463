package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type checkRepository struct {
	db *sqlx.DB
}

func NewCheckRepository(db *sqlx.DB) CheckRepository {
	return &checkRepository{db: db}
}

func (r *checkRepository) List(ctx context.Context, deviceID *int64) ([]*domain.RoutineCheck, error) {
	query := `
		SELECT c.*, d.name AS device_name, d.serial AS device_serial, d.department_id
		FROM routine_checks c
		LEFT JOIN devices d ON c.device_id = d.id
	`

	var checks []*domain.RoutineCheck
	var err error

	if deviceID != nil {
		err = r.db.SelectContext(ctx, &checks, query+` WHERE c.device_id = $1 ORDER BY c.check_date DESC`, *deviceID)
	} else {
		err = r.db.SelectContext(ctx, &checks, query+` ORDER BY c.check_date DESC`)
	}
	if err != nil {
		return nil, err
	}

	return checks, nil
}

func (r *checkRepository) Create(ctx context.Context, check *domain.RoutineCheck) (int64, error) {
	query := `
		INSERT INTO routine_checks (
			device_id, check_date, state, issue, checker_name, signature_png, check_type, criteria, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		check.DeviceID,
		check.CheckDate,
		check.State,
		check.Issue,
		check.CheckerName,
		check.SignaturePNG,
		check.CheckType,
		check.Criteria,
		check.CreatedBy,
	).Scan(&id)

	return id, err
}
