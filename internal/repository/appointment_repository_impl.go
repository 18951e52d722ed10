package repository

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	domainRepo "github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByUserID(db *gorm.DB, userID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("user_id = ?", userID).Order("appointment_date DESC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Order("appointment_date DESC").Find(&appointments).Error
	return appointments, err
}
