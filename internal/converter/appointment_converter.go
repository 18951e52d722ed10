package converter

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID:   appointment.ID,
		UserID:          appointment.UserID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Status:          appointment.Status,
		AdminNotes:      appointment.AdminNotes,
		CreatedAt:       appointment.CreatedAt,
	}
}

func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
