package repository

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientHistoryRepository interface {
	Create(db *gorm.DB, record *entity.PatientHistory) error
	FindByUserID(db *gorm.DB, userID int) ([]entity.PatientHistory, error)
	FindAll(db *gorm.DB) ([]entity.PatientHistory, error)
}
