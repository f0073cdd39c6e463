package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type deviceTypeRepository struct {
	db *sqlx.DB
}

func NewDeviceTypeRepository(db *sqlx.DB) DeviceTypeRepository {
	return &deviceTypeRepository{db: db}
}

func (r *deviceTypeRepository) ListActive(ctx context.Context) ([]*domain.DeviceType, error) {
	query := `
		SELECT id, name_ar, name_en, description, is_active, created_by, created_at
		FROM device_types
		WHERE is_active = TRUE
		ORDER BY name_ar
	`

	var types []*domain.DeviceType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *deviceTypeRepository) Create(ctx context.Context, deviceType *domain.DeviceType) (int64, error) {
	query := `
		INSERT INTO device_types (name_ar, name_en, description, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		deviceType.NameAr,
		deviceType.NameEn,
		deviceType.Description,
		deviceType.CreatedBy,
	).Scan(&id)

	return id, err
}

func (r *deviceTypeRepository) Update(ctx context.Context, id int64, req *domain.DeviceTypeRequest) error {
	query := `UPDATE device_types SET name_ar = $1, name_en = $2, description = $3 WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, req.NameAr, req.NameEn, req.Description, id)
	return err
}

func (r *deviceTypeRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE device_types SET is_active = FALSE WHERE id = $1`, id)
	return err
}

func (r *deviceTypeRepository) ListCriteria(ctx context.Context, typeID int64) ([]*domain.CheckCriteria, error) {
	query := `
		SELECT c.id, c.key, c.label_ar, c.description_ar, c.display_order, c.is_active, c.created_by, c.created_at
		FROM check_criteria c
		JOIN device_type_criteria dtc ON c.id = dtc.criteria_id
		WHERE dtc.device_type_id = $1 AND c.is_active = TRUE
		ORDER BY c.display_order
	`

	var criteria []*domain.CheckCriteria
	if err := r.db.SelectContext(ctx, &criteria, query, typeID); err != nil {
		return nil, err
	}

	return criteria, nil
}

func (r *deviceTypeRepository) ReplaceCriteria(ctx context.Context, typeID int64, criteriaIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM device_type_criteria WHERE device_type_id = $1`, typeID); err != nil {
		return err
	}

	for _, criteriaID := range criteriaIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO device_type_criteria (device_type_id, criteria_id) VALUES ($1, $2)`,
			typeID, criteriaID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
