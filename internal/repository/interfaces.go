package repository

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"
)

// DeviceRepository defines the interface for device registry data operations
type DeviceRepository interface {
	// Create inserts a device and returns its new id
	Create(ctx context.Context, device *domain.Device) (int64, error)

	// GetByID retrieves a device with joined department and type names
	GetByID(ctx context.Context, id int64) (*domain.Device, error)

	// ListAll returns every device, most recently created first
	ListAll(ctx context.Context) ([]*domain.Device, error)

	// ListPage returns a filtered page of devices plus the unpaged total
	ListPage(ctx context.Context, opts domain.DeviceListOptions) ([]*domain.Device, int, error)

	// FindBySerial finds a device by trimmed, case-insensitive serial with a
	// partial-match fallback (QR scan lookup)
	FindBySerial(ctx context.Context, serial string) (*domain.Device, error)

	// Update replaces a device's editable columns
	Update(ctx context.Context, id int64, device *domain.Device) error

	// Delete removes a device
	Delete(ctx context.Context, id int64) error

	// ListDueCandidates fetches the lightweight rows the due-status engine
	// classifies, optionally narrowed by department and device type
	ListDueCandidates(ctx context.Context, departmentID, deviceTypeID *int64) ([]*domain.DueDevice, error)
}

// DepartmentRepository defines the interface for department data operations
type DepartmentRepository interface {
	List(ctx context.Context) ([]*domain.Department, error)
	Create(ctx context.Context, department *domain.Department) (int64, error)
	Update(ctx context.Context, id int64, name string, custodianName *string) error
	Delete(ctx context.Context, id int64) error

	// AdjustDevicesCount shifts the cached device counter by delta
	AdjustDevicesCount(ctx context.Context, id int64, delta int) error
}

// DeviceTypeRepository defines the interface for device type data operations
type DeviceTypeRepository interface {
	ListActive(ctx context.Context) ([]*domain.DeviceType, error)
	Create(ctx context.Context, deviceType *domain.DeviceType) (int64, error)
	Update(ctx context.Context, id int64, req *domain.DeviceTypeRequest) error

	// Deactivate soft-deletes a type so existing devices keep their reference
	Deactivate(ctx context.Context, id int64) error

	// ListCriteria returns the active criteria linked to a device type
	ListCriteria(ctx context.Context, typeID int64) ([]*domain.CheckCriteria, error)

	// ReplaceCriteria swaps the linked criteria set atomically
	ReplaceCriteria(ctx context.Context, typeID int64, criteriaIDs []int64) error
}

// CheckRepository defines the interface for routine check data operations
type CheckRepository interface {
	// List returns checks joined with device name/serial, optionally for one
	// device, newest check date first
	List(ctx context.Context, deviceID *int64) ([]*domain.RoutineCheck, error)
	Create(ctx context.Context, check *domain.RoutineCheck) (int64, error)
}

// CriteriaRepository defines the interface for check criteria data operations
type CriteriaRepository interface {
	ListActive(ctx context.Context) ([]*domain.CheckCriteria, error)
	Create(ctx context.Context, criteria *domain.CheckCriteria) (int64, error)
	Update(ctx context.Context, id int64, req *domain.CriteriaRequest) error
	Deactivate(ctx context.Context, id int64) error

	// KeyExists reports whether another criteria row already uses the key,
	// case-insensitively
	KeyExists(ctx context.Context, key string, excludeID int64) (bool, error)
}

// TemplateRepository defines the interface for label template data operations
type TemplateRepository interface {
	List(ctx context.Context) ([]*domain.LabelTemplate, error)
	Create(ctx context.Context, template *domain.LabelTemplate) (int64, error)
}

// UserRepository defines the interface for user administration data operations
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User, passwordHash, createdBy string) (int64, error)
	Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
}

// ReportRepository defines the interface for dashboard aggregate queries
type ReportRepository interface {
	StateSummary(ctx context.Context, since string, departmentID *int64) (*domain.CheckStateSummary, error)
	DepartmentPerformance(ctx context.Context, since string) ([]*domain.DepartmentPerformance, error)
	Timeline(ctx context.Context, since string, departmentID *int64) ([]*domain.TimelinePoint, error)
	DevicesDistribution(ctx context.Context) ([]*domain.DistributionEntry, error)
	Departments(ctx context.Context) ([]*domain.DepartmentRef, error)
	Counts(ctx context.Context) (devices, checks, departments int, err error)
	RecentChecksByState(ctx context.Context, since string) ([]*domain.StateCount, error)
}
