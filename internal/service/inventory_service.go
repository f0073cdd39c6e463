package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/repository"
	customError "github.com/medtrack/inventory-server/pkg/errors"
)

const (
	deviceListDefaultSort = "recent"
	deviceListMaxLimit    = 100
)

// InventoryService manages the device registry and departments.
type InventoryService struct {
	deviceRepo     repository.DeviceRepository
	departmentRepo repository.DepartmentRepository
}

func NewInventoryService(
	deviceRepo repository.DeviceRepository,
	departmentRepo repository.DepartmentRepository,
) *InventoryService {
	return &InventoryService{
		deviceRepo:     deviceRepo,
		departmentRepo: departmentRepo,
	}
}

// ListDevices returns the full registry when no pagination is requested,
// otherwise a filtered page with the unpaged total.
func (s *InventoryService) ListDevices(ctx context.Context, opts domain.DeviceListOptions) (*domain.DeviceListResult, error) {
	if opts.Page == 0 && opts.Limit == 0 {
		devices, err := s.deviceRepo.ListAll(ctx)
		if err != nil {
			return nil, customError.WrapDatabaseError(err)
		}
		return &domain.DeviceListResult{Devices: devices}, nil
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 1
	}
	if opts.Limit > deviceListMaxLimit {
		opts.Limit = deviceListMaxLimit
	}
	if opts.Sort == "" {
		opts.Sort = deviceListDefaultSort
	}

	devices, total, err := s.deviceRepo.ListPage(ctx, opts)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit

	return &domain.DeviceListResult{
		Devices: devices,
		Pagination: &domain.DevicePagination{
			Page:       opts.Page,
			Limit:      opts.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// CreateDevice inserts a device and bumps the owning department's cached
// device counter.
func (s *InventoryService) CreateDevice(ctx context.Context, req *domain.DeviceRequest, createdBy string) (int64, error) {
	device := deviceFromRequest(req)
	device.CreatedBy = createdBy
	device.CreatedAt = time.Now()

	id, err := s.deviceRepo.Create(ctx, device)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	if req.DepartmentID != nil {
		// The counter is a display cache; a failed bump is logged, not fatal
		if err := s.departmentRepo.AdjustDevicesCount(ctx, *req.DepartmentID, 1); err != nil {
			log.Printf("failed to bump devices_count for department %d: %v", *req.DepartmentID, err)
		}
	}

	return id, nil
}

func (s *InventoryService) GetDevice(ctx context.Context, id int64) (*domain.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapDeviceNotFound(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return device, nil
}

// FindDeviceBySerial resolves a QR scan to a device record.
func (s *InventoryService) FindDeviceBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	device, err := s.deviceRepo.FindBySerial(ctx, serial)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapDeviceNotFoundBySerial(serial)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return device, nil
}

func (s *InventoryService) UpdateDevice(ctx context.Context, id int64, req *domain.DeviceRequest) error {
	device := deviceFromRequest(req)

	if err := s.deviceRepo.Update(ctx, id, device); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

// DeleteDevice removes a device and decrements its department's counter.
func (s *InventoryService) DeleteDevice(ctx context.Context, id int64) error {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customError.WrapDeviceNotFound(id)
		}
		return customError.WrapDatabaseError(err)
	}

	if err := s.deviceRepo.Delete(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}

	if device.DepartmentID != nil {
		if err := s.departmentRepo.AdjustDevicesCount(ctx, *device.DepartmentID, -1); err != nil {
			log.Printf("failed to drop devices_count for department %d: %v", *device.DepartmentID, err)
		}
	}

	return nil
}

func (s *InventoryService) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return departments, nil
}

func (s *InventoryService) CreateDepartment(ctx context.Context, req *domain.DepartmentRequest, createdBy string) (int64, error) {
	department := &domain.Department{
		Name:          req.Name,
		CustodianName: req.CustodianName,
		CreatedBy:     createdBy,
	}

	id, err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return id, nil
}

func (s *InventoryService) UpdateDepartment(ctx context.Context, id int64, req *domain.DepartmentRequest) error {
	if err := s.departmentRepo.Update(ctx, id, req.Name, req.CustodianName); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func (s *InventoryService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func deviceFromRequest(req *domain.DeviceRequest) *domain.Device {
	return &domain.Device{
		Name:                req.Name,
		Supplier:            req.Supplier,
		Manufacturer:        req.Manufacturer,
		Serial:              req.Serial,
		DepartmentID:        req.DepartmentID,
		SupplyDate:          req.SupplyDate,
		InstallDate:         req.InstallDate,
		ServiceEngineer:     req.ServiceEngineer,
		EngineerPhone:       req.EngineerPhone,
		RepairDate:          req.RepairDate,
		SignaturePNG:        req.SignaturePNG,
		PhotoURL:            req.PhotoURL,
		ManufacturerURL:     req.ManufacturerURL,
		Description:         req.Description,
		Model:               req.Model,
		DeviceTypeID:        req.DeviceTypeID,
		NextMaintenanceDate: req.NextMaintenanceDate,
		LastMaintenanceDate: req.LastMaintenanceDate,
		ContractPhotos:      req.ContractPhotos,
		Cost:                req.Cost,
		IsUnderWarranty:     req.IsUnderWarranty,
		WarrantyExpiryDate:  req.WarrantyExpiryDate,
	}
}
