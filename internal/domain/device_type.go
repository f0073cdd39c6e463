package domain

import "time"

// DeviceType is a device category. Types are soft-deleted so existing
// devices keep a resolvable reference.
type DeviceType struct {
	ID          int64     `json:"id" db:"id"`
	NameAr      string    `json:"name_ar" db:"name_ar"`
	NameEn      *string   `json:"name_en" db:"name_en"`
	Description *string   `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedBy   string    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type DeviceTypeRequest struct {
	NameAr      string  `json:"name_ar" validate:"required"`
	NameEn      *string `json:"name_en"`
	Description *string `json:"description"`
}

// SetTypeCriteriaRequest replaces the criteria linked to a device type.
type SetTypeCriteriaRequest struct {
	CriteriaIDs []int64 `json:"criteria_ids" validate:"required"`
}
