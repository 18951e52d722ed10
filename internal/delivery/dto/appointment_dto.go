package dto

import "time"

type ScheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
}

type AppointmentResponse struct {
	AppointmentID   int       `json:"appointment_id"`
	UserID          int       `json:"user_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	AdminNotes      string    `json:"admin_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
