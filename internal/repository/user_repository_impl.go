package repository

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	domainRepo "github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id int) (*entity.User, error) {
	var user entity.User
	err := db.Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByCredentials(db *gorm.DB, email, digest string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ? AND password = ?", email, digest).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Order("user_id").Find(&users).Error
	return users, err
}
