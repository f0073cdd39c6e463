package mocks

import (
	"context"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockDeviceTypeRepository struct {
	mock.Mock
}

func (m *MockDeviceTypeRepository) ListActive(ctx context.Context) ([]*domain.DeviceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DeviceType), args.Error(1)
}

func (m *MockDeviceTypeRepository) Create(ctx context.Context, deviceType *domain.DeviceType) (int64, error) {
	args := m.Called(ctx, deviceType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceTypeRepository) Update(ctx context.Context, id int64, req *domain.DeviceTypeRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockDeviceTypeRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeviceTypeRepository) ListCriteria(ctx context.Context, typeID int64) ([]*domain.CheckCriteria, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CheckCriteria), args.Error(1)
}

func (m *MockDeviceTypeRepository) ReplaceCriteria(ctx context.Context, typeID int64, criteriaIDs []int64) error {
	args := m.Called(ctx, typeID, criteriaIDs)
	return args.Error(0)
}

type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) List(ctx context.Context, deviceID *int64) ([]*domain.RoutineCheck, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoutineCheck), args.Error(1)
}

func (m *MockCheckRepository) Create(ctx context.Context, check *domain.RoutineCheck) (int64, error) {
	args := m.Called(ctx, check)
	return args.Get(0).(int64), args.Error(1)
}

type MockCriteriaRepository struct {
	mock.Mock
}

func (m *MockCriteriaRepository) ListActive(ctx context.Context) ([]*domain.CheckCriteria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CheckCriteria), args.Error(1)
}

func (m *MockCriteriaRepository) Create(ctx context.Context, criteria *domain.CheckCriteria) (int64, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCriteriaRepository) Update(ctx context.Context, id int64, req *domain.CriteriaRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockCriteriaRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCriteriaRepository) KeyExists(ctx context.Context, key string, excludeID int64) (bool, error) {
	args := m.Called(ctx, key, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) List(ctx context.Context) ([]*domain.LabelTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LabelTemplate), args.Error(1)
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.LabelTemplate) (int64, error) {
	args := m.Called(ctx, template)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User, passwordHash, createdBy string) (int64, error) {
	args := m.Called(ctx, user, passwordHash, createdBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) StateSummary(ctx context.Context, since string, departmentID *int64) (*domain.CheckStateSummary, error) {
	args := m.Called(ctx, since, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckStateSummary), args.Error(1)
}

func (m *MockReportRepository) DepartmentPerformance(ctx context.Context, since string) ([]*domain.DepartmentPerformance, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DepartmentPerformance), args.Error(1)
}

func (m *MockReportRepository) Timeline(ctx context.Context, since string, departmentID *int64) ([]*domain.TimelinePoint, error) {
	args := m.Called(ctx, since, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimelinePoint), args.Error(1)
}

func (m *MockReportRepository) DevicesDistribution(ctx context.Context) ([]*domain.DistributionEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DistributionEntry), args.Error(1)
}

func (m *MockReportRepository) Departments(ctx context.Context) ([]*domain.DepartmentRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DepartmentRef), args.Error(1)
}

func (m *MockReportRepository) Counts(ctx context.Context) (int, int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

func (m *MockReportRepository) RecentChecksByState(ctx context.Context, since string) ([]*domain.StateCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StateCount), args.Error(1)
}
