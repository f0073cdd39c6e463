package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type departmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	query := `
		SELECT id, name, custodian_name, devices_count, created_by, created_at
		FROM departments
		ORDER BY name
	`

	var departments []*domain.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepository) Create(ctx context.Context, department *domain.Department) (int64, error) {
	query := `
		INSERT INTO departments (name, custodian_name, created_by)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		department.Name,
		department.CustodianName,
		department.CreatedBy,
	).Scan(&id)

	return id, err
}

func (r *departmentRepository) Update(ctx context.Context, id int64, name string, custodianName *string) error {
	query := `UPDATE departments SET name = $1, custodian_name = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, name, custodianName, id)
	return err
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	return err
}

func (r *departmentRepository) AdjustDevicesCount(ctx context.Context, id int64, delta int) error {
	query := `UPDATE departments SET devices_count = devices_count + $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, delta, id)
	return err
}
