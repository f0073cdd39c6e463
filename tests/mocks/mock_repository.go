package mocks

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *domain.Device) (int64, error) {
	args := m.Called(ctx, device)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}

func (m *MockDeviceRepository) ListAll(ctx context.Context) ([]*domain.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Device), args.Error(1)
}

func (m *MockDeviceRepository) ListPage(ctx context.Context, opts domain.DeviceListOptions) ([]*domain.Device, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Device), args.Int(1), args.Error(2)
}

func (m *MockDeviceRepository) FindBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}

func (m *MockDeviceRepository) Update(ctx context.Context, id int64, device *domain.Device) error {
	args := m.Called(ctx, id, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceRepository) ListDueCandidates(ctx context.Context, departmentID, deviceTypeID *int64) ([]*domain.DueDevice, error) {
	args := m.Called(ctx, departmentID, deviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DueDevice), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *domain.Department) (int64, error) {
	args := m.Called(ctx, department)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, id int64, name string, custodianName *string) error {
	args := m.Called(ctx, id, name, custodianName)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentRepository) AdjustDevicesCount(ctx context.Context, id int64, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}
