package domain

import "time"

// LabelTemplate stores a QR-label layout definition. The designer that
// produces the JSON lives in the frontend; this side only persists it.
type LabelTemplate struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	JSONDefinition string    `json:"json_definition" db:"json_definition"`
	IsDefault      bool      `json:"is_default" db:"is_default"`
	CreatedBy      string    `json:"created_by" db:"created_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type TemplateRequest struct {
	Name           string `json:"name" validate:"required"`
	JSONDefinition string `json:"json_definition" validate:"required"`
	IsDefault      bool   `json:"is_default"`
}
