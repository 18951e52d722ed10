package repository

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	domainRepo "github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"

	"gorm.io/gorm"
)

type patientHistoryRepository struct{}

func NewPatientHistoryRepository() domainRepo.PatientHistoryRepository {
	return &patientHistoryRepository{}
}

func (r *patientHistoryRepository) Create(db *gorm.DB, record *entity.PatientHistory) error {
	return db.Create(record).Error
}

func (r *patientHistoryRepository) FindByUserID(db *gorm.DB, userID int) ([]entity.PatientHistory, error) {
	var records []entity.PatientHistory
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *patientHistoryRepository) FindAll(db *gorm.DB) ([]entity.PatientHistory, error) {
	var records []entity.PatientHistory
	err := db.Order("created_at DESC").Find(&records).Error
	return records, err
}
