package domain

import "time"

// Routine check states
const (
	CheckStateExcellent = "excellent"
	CheckStateGood      = "good"
	CheckStatePoor      = "poor"
)

// Check types
const (
	CheckTypeDaily   = "daily"
	CheckTypeMonthly = "monthly"
)

// RoutineCheck is a recorded inspection of a device
type RoutineCheck struct {
	ID           int64     `json:"id" db:"id"`
	DeviceID     int64     `json:"device_id" db:"device_id"`
	CheckDate    string    `json:"check_date" db:"check_date"`
	State        string    `json:"state" db:"state"`
	Issue        *string   `json:"issue" db:"issue"`
	CheckerName  string    `json:"checker_name" db:"checker_name"`
	SignaturePNG *string   `json:"signature_png" db:"signature_png"`
	CheckType    string    `json:"check_type" db:"check_type"`
	Criteria     *string   `json:"criteria" db:"criteria"`
	CreatedBy    string    `json:"created_by" db:"created_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Joined columns
	DeviceName   *string `json:"device_name,omitempty" db:"device_name"`
	DeviceSerial *string `json:"device_serial,omitempty" db:"device_serial"`
	DepartmentID *int64  `json:"department_id,omitempty" db:"department_id"`
}

type CheckRequest struct {
	DeviceID     int64   `json:"device_id" validate:"required"`
	CheckDate    string  `json:"check_date" validate:"required"`
	State        string  `json:"state" validate:"required,oneof=excellent good poor"`
	Issue        *string `json:"issue"`
	CheckerName  string  `json:"checker_name" validate:"required"`
	SignaturePNG *string `json:"signature_png"`
	CheckType    string  `json:"check_type" validate:"omitempty,oneof=daily monthly"`
	Criteria     *string `json:"criteria"`
}
