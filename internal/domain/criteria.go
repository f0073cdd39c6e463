package domain

import "time"

// CheckCriteria is a configurable inspection item shown on check forms.
// Criteria are soft-deleted; keys are unique case-insensitively.
type CheckCriteria struct {
	ID            int64     `json:"id" db:"id"`
	Key           string    `json:"key" db:"key"`
	LabelAr       string    `json:"label_ar" db:"label_ar"`
	DescriptionAr *string   `json:"description_ar" db:"description_ar"`
	DisplayOrder  int       `json:"display_order" db:"display_order"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedBy     string    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CriteriaRequest struct {
	Key           string  `json:"key" validate:"required"`
	LabelAr       string  `json:"label_ar" validate:"required"`
	DescriptionAr *string `json:"description_ar"`
	DisplayOrder  int     `json:"display_order"`
	IsActive      *bool   `json:"is_active"`
}
