package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) List(ctx context.Context) ([]*domain.LabelTemplate, error) {
	query := `
		SELECT id, name, json_definition, is_default, created_by, created_at
		FROM label_templates
		ORDER BY name
	`

	var templates []*domain.LabelTemplate
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *templateRepository) Create(ctx context.Context, template *domain.LabelTemplate) (int64, error) {
	query := `
		INSERT INTO label_templates (name, json_definition, is_default, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		template.Name,
		template.JSONDefinition,
		template.IsDefault,
		template.CreatedBy,
	).Scan(&id)

	return id, err
}
