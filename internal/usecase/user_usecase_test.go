package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/password"
)

func TestUserUsecase_FindByEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(newTestDB(), newTestLogger(), userRepo)

	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&entity.User{
		ID:       7,
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Role:     entity.RoleUser,
		Password: password.Hash("secret1"),
	}, nil)

	result := uc.FindByEmail(context.Background(), "jane@example.com")

	assert.NotNil(t, result)
	assert.Equal(t, 7, result.UserID)
	assert.Equal(t, "jane@example.com", result.Email)
	assert.Equal(t, "Jane Doe", result.FullName)
}

func TestUserUsecase_FindByEmail_Unknown(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(newTestDB(), newTestLogger(), userRepo)

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	assert.Nil(t, uc.FindByEmail(context.Background(), "nobody@example.com"))
}

func TestUserUsecase_ListAllUsers_RequiresAdmin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(newTestDB(), newTestLogger(), userRepo)

	result, err := uc.ListAllUsers(context.Background(), userSession(3))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrForbidden)
	userRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestUserUsecase_ListAllUsers_Admin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(newTestDB(), newTestLogger(), userRepo)

	userRepo.On("FindAll", mock.Anything).Return([]entity.User{
		{ID: 1, Email: "admin@wecare.com", Role: entity.RoleAdmin},
		{ID: 2, Email: "user@wecare.com", Role: entity.RoleUser},
	}, nil)

	result, err := uc.ListAllUsers(context.Background(), adminSession())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "admin@wecare.com", result[0].Email)
}

func TestUserUsecase_ListAllUsers_DegradesToEmpty(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(newTestDB(), newTestLogger(), userRepo)

	userRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection reset"))

	result, err := uc.ListAllUsers(context.Background(), adminSession())

	assert.NoError(t, err)
	assert.Empty(t, result)
}
