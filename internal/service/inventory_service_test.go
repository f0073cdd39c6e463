package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/medtrack/inventory-server/internal/domain"
	customError "github.com/medtrack/inventory-server/pkg/errors"
	"github.com/medtrack/inventory-server/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListDevices_NoPaginationReturnsAll(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	devices := []*domain.Device{{ID: 1, Name: "Ventilator"}, {ID: 2, Name: "Monitor"}}
	deviceRepo.On("ListAll", mock.Anything).Return(devices, nil)

	result, err := svc.ListDevices(context.Background(), domain.DeviceListOptions{})

	require.NoError(t, err)
	assert.Len(t, result.Devices, 2)
	assert.Nil(t, result.Pagination)
	deviceRepo.AssertNotCalled(t, "ListPage")
}

func TestListDevices_PaginationClampedAndTotalPagesComputed(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deviceRepo.On("ListPage", mock.Anything, mock.MatchedBy(func(opts domain.DeviceListOptions) bool {
		return opts.Page == 1 && opts.Limit == 100 && opts.Sort == "recent"
	})).Return([]*domain.Device{{ID: 1}}, 250, nil)

	result, err := svc.ListDevices(context.Background(), domain.DeviceListOptions{Page: -2, Limit: 9999})

	require.NoError(t, err)
	require.NotNil(t, result.Pagination)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 100, result.Pagination.Limit)
	assert.Equal(t, 250, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestCreateDevice_BumpsDepartmentCounter(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deptID := int64(3)
	deviceRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Device) bool {
		return d.Name == "Infusion Pump" && d.CreatedBy == "tech-1"
	})).Return(int64(42), nil)
	departmentRepo.On("AdjustDevicesCount", mock.Anything, deptID, 1).Return(nil)

	id, err := svc.CreateDevice(context.Background(), &domain.DeviceRequest{
		Name:         "Infusion Pump",
		Serial:       "IP-100",
		DepartmentID: &deptID,
	}, "tech-1")

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	departmentRepo.AssertExpectations(t)
}

func TestCreateDevice_CounterBumpFailureIsNotFatal(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deptID := int64(3)
	deviceRepo.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)
	departmentRepo.On("AdjustDevicesCount", mock.Anything, deptID, 1).
		Return(errors.New("deadlock"))

	id, err := svc.CreateDevice(context.Background(), &domain.DeviceRequest{
		Name:         "Monitor",
		Serial:       "M-1",
		DepartmentID: &deptID,
	}, "tech-1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestGetDevice_NotFound(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deviceRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	_, err := svc.GetDevice(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, customError.ErrDeviceNotFound))
}

func TestFindDeviceBySerial_NotFound(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deviceRepo.On("FindBySerial", mock.Anything, "NOPE-1").Return(nil, sql.ErrNoRows)

	_, err := svc.FindDeviceBySerial(context.Background(), "NOPE-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, customError.ErrDeviceNotFound))
}

func TestDeleteDevice_DropsDepartmentCounter(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deptID := int64(5)
	deviceRepo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Device{ID: 11, DepartmentID: &deptID}, nil)
	deviceRepo.On("Delete", mock.Anything, int64(11)).Return(nil)
	departmentRepo.On("AdjustDevicesCount", mock.Anything, deptID, -1).Return(nil)

	err := svc.DeleteDevice(context.Background(), 11)

	require.NoError(t, err)
	departmentRepo.AssertExpectations(t)
}

func TestDeleteDevice_NotFound(t *testing.T) {
	deviceRepo := new(mocks.MockDeviceRepository)
	departmentRepo := new(mocks.MockDepartmentRepository)
	svc := NewInventoryService(deviceRepo, departmentRepo)

	deviceRepo.On("GetByID", mock.Anything, int64(11)).Return(nil, sql.ErrNoRows)

	err := svc.DeleteDevice(context.Background(), 11)

	require.Error(t, err)
	assert.True(t, errors.Is(err, customError.ErrDeviceNotFound))
	deviceRepo.AssertNotCalled(t, "Delete")
}
