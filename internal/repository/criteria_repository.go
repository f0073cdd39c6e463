package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type criteriaRepository struct {
	db *sqlx.DB
}

func NewCriteriaRepository(db *sqlx.DB) CriteriaRepository {
	return &criteriaRepository{db: db}
}

func (r *criteriaRepository) ListActive(ctx context.Context) ([]*domain.CheckCriteria, error) {
	query := `
		SELECT id, key, label_ar, description_ar, display_order, is_active, created_by, created_at
		FROM check_criteria
		WHERE is_active = TRUE
		ORDER BY display_order, id
	`

	var criteria []*domain.CheckCriteria
	if err := r.db.SelectContext(ctx, &criteria, query); err != nil {
		return nil, err
	}

	return criteria, nil
}

func (r *criteriaRepository) Create(ctx context.Context, criteria *domain.CheckCriteria) (int64, error) {
	query := `
		INSERT INTO check_criteria (key, label_ar, description_ar, display_order, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		criteria.Key,
		criteria.LabelAr,
		criteria.DescriptionAr,
		criteria.DisplayOrder,
		criteria.CreatedBy,
	).Scan(&id)

	return id, err
}

func (r *criteriaRepository) Update(ctx context.Context, id int64, req *domain.CriteriaRequest) error {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := `
		UPDATE check_criteria
		SET key = $1, label_ar = $2, description_ar = $3, display_order = $4, is_active = $5
		WHERE id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		req.Key, req.LabelAr, req.DescriptionAr, req.DisplayOrder, isActive, id)
	return err
}

func (r *criteriaRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE check_criteria SET is_active = FALSE WHERE id = $1`, id)
	return err
}

func (r *criteriaRepository) KeyExists(ctx context.Context, key string, excludeID int64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM check_criteria WHERE LOWER(key) = LOWER($1) AND id != $2`,
		key, excludeID)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
