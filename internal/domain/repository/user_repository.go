package repository

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	// FindByCredentials matches a row on the exact (email, digest) pair.
	// A missing email and a wrong digest both yield gorm.ErrRecordNotFound.
	FindByCredentials(db *gorm.DB, email, digest string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
}
