package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Device represents a registered medical device
type Device struct {
	ID                  int64               `json:"id" db:"id"`
	Name                string              `json:"name" db:"name"`
	Supplier            *string             `json:"supplier" db:"supplier"`
	Manufacturer        *string             `json:"manufacturer" db:"manufacturer"`
	Serial              string              `json:"serial" db:"serial"`
	DepartmentID        *int64              `json:"department_id" db:"department_id"`
	SupplyDate          *string             `json:"supply_date" db:"supply_date"`
	InstallDate         *string             `json:"install_date" db:"install_date"`
	ServiceEngineer     *string             `json:"service_engineer" db:"service_engineer"`
	EngineerPhone       *string             `json:"engineer_phone" db:"engineer_phone"`
	RepairDate          *string             `json:"repair_date" db:"repair_date"`
	SignaturePNG        *string             `json:"signature_png" db:"signature_png"`
	PhotoURL            *string             `json:"photo_url" db:"photo_url"`
	ManufacturerURL     *string             `json:"manufacturer_url" db:"manufacturer_url"`
	Description         *string             `json:"description" db:"description"`
	Model               *string             `json:"model" db:"model"`
	DeviceTypeID        *int64              `json:"device_type_id" db:"device_type_id"`
	NextMaintenanceDate *string             `json:"next_maintenance_date" db:"next_maintenance_date"`
	LastMaintenanceDate *string             `json:"last_maintenance_date" db:"last_maintenance_date"`
	ContractPhotos      *string             `json:"contract_photos" db:"contract_photos"`
	Cost                decimal.NullDecimal `json:"cost" db:"cost"`
	IsUnderWarranty     bool                `json:"is_under_warranty" db:"is_under_warranty"`
	WarrantyExpiryDate  *string             `json:"warranty_expiry_date" db:"warranty_expiry_date"`
	CreatedBy           string              `json:"created_by" db:"created_by"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`

	// Joined columns, present on read paths only
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
	DeviceTypeName *string `json:"device_type_name,omitempty" db:"device_type_name"`
}

// DTOs for requests and responses

type DeviceRequest struct {
	Name                string              `json:"name" validate:"required"`
	Supplier            *string             `json:"supplier"`
	Manufacturer        *string             `json:"manufacturer"`
	Serial              string              `json:"serial" validate:"required"`
	DepartmentID        *int64              `json:"department_id"`
	SupplyDate          *string             `json:"supply_date"`
	InstallDate         *string             `json:"install_date"`
	ServiceEngineer     *string             `json:"service_engineer"`
	EngineerPhone       *string             `json:"engineer_phone"`
	RepairDate          *string             `json:"repair_date"`
	SignaturePNG        *string             `json:"signature_png"`
	PhotoURL            *string             `json:"photo_url"`
	ManufacturerURL     *string             `json:"manufacturer_url"`
	Description         *string             `json:"description"`
	Model               *string             `json:"model"`
	DeviceTypeID        *int64              `json:"device_type_id"`
	NextMaintenanceDate *string             `json:"next_maintenance_date"`
	LastMaintenanceDate *string             `json:"last_maintenance_date"`
	ContractPhotos      *string             `json:"contract_photos"`
	Cost                decimal.NullDecimal `json:"cost"`
	IsUnderWarranty     bool                `json:"is_under_warranty"`
	WarrantyExpiryDate  *string             `json:"warranty_expiry_date"`
}

// DeviceListOptions narrows and orders the paginated device registry.
type DeviceListOptions struct {
	Page         int
	Limit        int
	Query        string
	DepartmentID *int64
	Sort         string // recent, name_asc, name_desc
}

type DevicePagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type DeviceListResult struct {
	Devices    []*Device         `json:"devices"`
	Pagination *DevicePagination `json:"pagination,omitempty"`
}
