package usecase

import (
	"context"
	"errors"

	"github.com/sarthakyadav7225/hms-WeCare/internal/converter"
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	// FindByEmail returns the public projection of a user, or nil when the
	// email is unknown. The password digest is never part of the result.
	FindByEmail(ctx context.Context, email string) *dto.UserResponse
	ListAllUsers(ctx context.Context, actor entity.Session) ([]dto.UserResponse, error)
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *userUsecase) FindByEmail(ctx context.Context, email string) *dto.UserResponse {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			u.log.Warnf("Failed to find user by email: %+v", err)
		}
		return nil
	}
	return converter.UserToResponse(user)
}

// ListAllUsers is admin scope. A storage failure degrades to an empty list.
func (u *userUsecase) ListAllUsers(ctx context.Context, actor entity.Session) ([]dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return []dto.UserResponse{}, nil
	}
	return converter.UsersToResponse(users), nil
}
