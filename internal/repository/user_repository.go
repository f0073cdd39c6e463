package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	// password_hash is never selected
	query := `
		SELECT id, username, name, email, role, status, privileges, created_at, last_login
		FROM users
		ORDER BY created_at DESC
	`

	var users []*domain.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User, passwordHash, createdBy string) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, name, email, role, privileges, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		passwordHash,
		user.Name,
		user.Email,
		user.Role,
		user.Privileges,
		createdBy,
	).Scan(&id)

	return id, err
}

func (r *userRepository) Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, role = $3, status = $4, privileges = $5
		WHERE id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		req.Name, req.Email, req.Role, req.Status, req.Privileges, id)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
