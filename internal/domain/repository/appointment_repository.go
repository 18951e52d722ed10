package repository

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByUserID(db *gorm.DB, userID int) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
}
