package service

import (
	"context"
	"errors"
	"testing"

	"github.com/medtrack/inventory-server/internal/domain"
	customError "github.com/medtrack/inventory-server/pkg/errors"
	"github.com/medtrack/inventory-server/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminService() (*AdminService, *mocks.MockDeviceTypeRepository, *mocks.MockCriteriaRepository, *mocks.MockTemplateRepository, *mocks.MockUserRepository) {
	deviceTypeRepo := new(mocks.MockDeviceTypeRepository)
	criteriaRepo := new(mocks.MockCriteriaRepository)
	templateRepo := new(mocks.MockTemplateRepository)
	userRepo := new(mocks.MockUserRepository)
	svc := NewAdminService(deviceTypeRepo, criteriaRepo, templateRepo, userRepo)
	return svc, deviceTypeRepo, criteriaRepo, templateRepo, userRepo
}

func TestCreateCriteria_DuplicateKeyRejected(t *testing.T) {
	svc, _, criteriaRepo, _, _ := newAdminService()

	criteriaRepo.On("KeyExists", mock.Anything, "visual_check", int64(0)).Return(true, nil)

	_, err := svc.CreateCriteria(context.Background(), &domain.CriteriaRequest{
		Key:     "visual_check",
		LabelAr: "فحص بصري",
	}, "admin")

	require.Error(t, err)
	assert.True(t, errors.Is(err, customError.ErrCriteriaKeyExists))
	criteriaRepo.AssertNotCalled(t, "Create")
}

func TestCreateCriteria_NewKeyCreated(t *testing.T) {
	svc, _, criteriaRepo, _, _ := newAdminService()

	criteriaRepo.On("KeyExists", mock.Anything, "battery_level", int64(0)).Return(false, nil)
	criteriaRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.CheckCriteria) bool {
		return c.Key == "battery_level" && c.IsActive && c.CreatedBy == "admin"
	})).Return(int64(12), nil)

	id, err := svc.CreateCriteria(context.Background(), &domain.CriteriaRequest{
		Key:     "battery_level",
		LabelAr: "مستوى البطارية",
	}, "admin")

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestUpdateCriteria_KeyTakenByAnotherRow(t *testing.T) {
	svc, _, criteriaRepo, _, _ := newAdminService()

	criteriaRepo.On("KeyExists", mock.Anything, "visual_check", int64(5)).Return(true, nil)

	err := svc.UpdateCriteria(context.Background(), 5, &domain.CriteriaRequest{
		Key:     "visual_check",
		LabelAr: "فحص بصري",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, customError.ErrCriteriaKeyExists))
	criteriaRepo.AssertNotCalled(t, "Update")
}

func TestCreateUser_HashesPasswordAndAppliesDefaults(t *testing.T) {
	svc, _, _, _, userRepo := newAdminService()

	var capturedHash string
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "jdoe" && u.Role == domain.UserRoleUser && u.Privileges == "[]"
	}), mock.AnythingOfType("string"), "admin").
		Run(func(args mock.Arguments) {
			capturedHash = args.String(2)
		}).
		Return(int64(3), nil)

	id, err := svc.CreateUser(context.Background(), &domain.CreateUserRequest{
		Username: "jdoe",
		Name:     "J. Doe",
		Password: "s3cret-pass",
	}, "admin")

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	// The stored hash must verify against the original password and never
	// equal the plaintext
	assert.NotEqual(t, "s3cret-pass", capturedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(capturedHash), []byte("s3cret-pass")))
}

func TestSetTypeCriteria_DelegatesToRepository(t *testing.T) {
	svc, deviceTypeRepo, _, _, _ := newAdminService()

	ids := []int64{1, 4, 9}
	deviceTypeRepo.On("ReplaceCriteria", mock.Anything, int64(2), ids).Return(nil)

	err := svc.SetTypeCriteria(context.Background(), 2, ids)

	require.NoError(t, err)
	deviceTypeRepo.AssertExpectations(t)
}
