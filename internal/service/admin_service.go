package service

import (
	"context"
	"time"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/repository"
	customError "github.com/medtrack/inventory-server/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminService covers the configuration surfaces: device types, check
// criteria, label templates and user administration. Authentication itself
// lives outside this service.
type AdminService struct {
	deviceTypeRepo repository.DeviceTypeRepository
	criteriaRepo   repository.CriteriaRepository
	templateRepo   repository.TemplateRepository
	userRepo       repository.UserRepository
}

func NewAdminService(
	deviceTypeRepo repository.DeviceTypeRepository,
	criteriaRepo repository.CriteriaRepository,
	templateRepo repository.TemplateRepository,
	userRepo repository.UserRepository,
) *AdminService {
	return &AdminService{
		deviceTypeRepo: deviceTypeRepo,
		criteriaRepo:   criteriaRepo,
		templateRepo:   templateRepo,
		userRepo:       userRepo,
	}
}

// Device types

func (s *AdminService) ListDeviceTypes(ctx context.Context) ([]*domain.DeviceType, error) {
	types, err := s.deviceTypeRepo.ListActive(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return types, nil
}

func (s *AdminService) CreateDeviceType(ctx context.Context, req *domain.DeviceTypeRequest, createdBy string) (int64, error) {
	deviceType := &domain.DeviceType{
		NameAr:      req.NameAr,
		NameEn:      req.NameEn,
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	id, err := s.deviceTypeRepo.Create(ctx, deviceType)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return id, nil
}

func (s *AdminService) UpdateDeviceType(ctx context.Context, id int64, req *domain.DeviceTypeRequest) error {
	if err := s.deviceTypeRepo.Update(ctx, id, req); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func (s *AdminService) DeactivateDeviceType(ctx context.Context, id int64) error {
	if err := s.deviceTypeRepo.Deactivate(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func (s *AdminService) ListTypeCriteria(ctx context.Context, typeID int64) ([]*domain.CheckCriteria, error) {
	criteria, err := s.deviceTypeRepo.ListCriteria(ctx, typeID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return criteria, nil
}

func (s *AdminService) SetTypeCriteria(ctx context.Context, typeID int64, criteriaIDs []int64) error {
	if err := s.deviceTypeRepo.ReplaceCriteria(ctx, typeID, criteriaIDs); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

// Check criteria

func (s *AdminService) ListCriteria(ctx context.Context) ([]*domain.CheckCriteria, error) {
	criteria, err := s.criteriaRepo.ListActive(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return criteria, nil
}

func (s *AdminService) CreateCriteria(ctx context.Context, req *domain.CriteriaRequest, createdBy string) (int64, error) {
	exists, err := s.criteriaRepo.KeyExists(ctx, req.Key, 0)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}
	if exists {
		return 0, customError.WrapCriteriaKeyExists(req.Key)
	}

	criteria := &domain.CheckCriteria{
		Key:           req.Key,
		LabelAr:       req.LabelAr,
		DescriptionAr: req.DescriptionAr,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      true,
		CreatedBy:     createdBy,
	}

	id, err := s.criteriaRepo.Create(ctx, criteria)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return id, nil
}

func (s *AdminService) UpdateCriteria(ctx context.Context, id int64, req *domain.CriteriaRequest) error {
	exists, err := s.criteriaRepo.KeyExists(ctx, req.Key, id)
	if err != nil {
		return customError.WrapDatabaseError(err)
	}
	if exists {
		return customError.WrapCriteriaKeyExists(req.Key)
	}

	if err := s.criteriaRepo.Update(ctx, id, req); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func (s *AdminService) DeactivateCriteria(ctx context.Context, id int64) error {
	if err := s.criteriaRepo.Deactivate(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

// Label templates

func (s *AdminService) ListTemplates(ctx context.Context) ([]*domain.LabelTemplate, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return templates, nil
}

func (s *AdminService) CreateTemplate(ctx context.Context, req *domain.TemplateRequest, createdBy string) (int64, error) {
	template := &domain.LabelTemplate{
		Name:           req.Name,
		JSONDefinition: req.JSONDefinition,
		IsDefault:      req.IsDefault,
		CreatedBy:      createdBy,
	}

	id, err := s.templateRepo.Create(ctx, template)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return id, nil
}

// Users

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return users, nil
}

func (s *AdminService) CreateUser(ctx context.Context, req *domain.CreateUserRequest, createdBy string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	role := req.Role
	if role == "" {
		role = domain.UserRoleUser
	}
	privileges := req.Privileges
	if privileges == "" {
		privileges = "[]"
	}

	user := &domain.User{
		Username:   req.Username,
		Name:       req.Name,
		Email:      req.Email,
		Role:       role,
		Privileges: privileges,
		CreatedAt:  time.Now(),
	}

	id, err := s.userRepo.Create(ctx, user, string(hash), createdBy)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	return id, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, req *domain.UpdateUserRequest) error {
	if err := s.userRepo.Update(ctx, id, req); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}
