package domain

// DueDevice is the lightweight device row used by the due-maintenance list
// and the bell popup. Status and DaysOverdue are derived per request, never
// persisted.
type DueDevice struct {
	ID                  int64   `json:"id" db:"id"`
	Name                string  `json:"name" db:"name"`
	Serial              string  `json:"serial" db:"serial"`
	DepartmentID        *int64  `json:"department_id" db:"department_id"`
	DeviceTypeID        *int64  `json:"device_type_id" db:"device_type_id"`
	DepartmentName      *string `json:"department_name" db:"department_name"`
	DeviceTypeName      *string `json:"device_type_name" db:"device_type_name"`
	NextMaintenanceDate *string `json:"next_maintenance_date" db:"next_maintenance_date"`
	LastMaintenanceDate *string `json:"last_maintenance_date" db:"last_maintenance_date"`
	EngineerPhone       *string `json:"engineer_phone" db:"engineer_phone"`
	ServiceEngineer     *string `json:"service_engineer" db:"service_engineer"`

	Status      string `json:"status" db:"-"`
	DaysOverdue int    `json:"days_overdue" db:"-"`
}

// MaintenanceSummary holds the whole-fleet bucket counts for the bell badge.
// TotalDue deliberately excludes NoDate: devices without a recorded date are
// surfaced but not alarmed on.
type MaintenanceSummary struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"dueToday"`
	DueSoon  int `json:"dueSoon"`
	NoDate   int `json:"noDate"`
	Days     int `json:"days"`
	TotalDue int `json:"totalDue"`
}

type DuePagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type DueListResult struct {
	Items      []*DueDevice  `json:"items"`
	Pagination DuePagination `json:"pagination"`
}
