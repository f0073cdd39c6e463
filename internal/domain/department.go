package domain

import "time"

// Department groups devices under a hospital unit with a custodian
type Department struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	CustodianName *string   `json:"custodian_name" db:"custodian_name"`
	DevicesCount  int       `json:"devices_count" db:"devices_count"`
	CreatedBy     string    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type DepartmentRequest struct {
	Name          string  `json:"name" validate:"required"`
	CustodianName *string `json:"custodian_name"`
}
