package usecase

import (
	"context"

	"github.com/sarthakyadav7225/hms-WeCare/internal/converter"
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"
	"github.com/sarthakyadav7225/hms-WeCare/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	// Schedule creates an appointment for the session's own user id.
	// Every appointment starts pending; no operation transitions it.
	Schedule(ctx context.Context, actor entity.Session, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	ListOwn(ctx context.Context, actor entity.Session) []dto.AppointmentResponse
	ListAll(ctx context.Context, actor entity.Session) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Schedule(ctx context.Context, actor entity.Session, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{
		UserID:          actor.UserID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &actor.UserID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id":   appointment.ID,
		"appointment_date": appointment.AppointmentDate,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// ListOwn returns the caller's appointments, newest date first. A storage
// failure degrades to an empty list; the outage is logged, not surfaced.
func (u *appointmentUsecase) ListOwn(ctx context.Context, actor entity.Session) []dto.AppointmentResponse {
	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %d: %+v", actor.UserID, err)
		return []dto.AppointmentResponse{}
	}
	return converter.AppointmentsToResponse(appointments)
}

func (u *appointmentUsecase) ListAll(ctx context.Context, actor entity.Session) ([]dto.AppointmentResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list all appointments: %+v", err)
		return []dto.AppointmentResponse{}, nil
	}
	return converter.AppointmentsToResponse(appointments), nil
}
