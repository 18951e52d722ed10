package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/http/middleware"
	"github.com/sarthakyadav7225/hms-WeCare/internal/usecase"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/response"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Schedule creates a pending appointment for the authenticated user.
func (h *AppointmentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ScheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Schedule(r.Context(), session, &req)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

// ListOwn returns the authenticated user's appointments.
func (h *AppointmentHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments := h.appointmentUsecase.ListOwn(r.Context(), session)
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListAll returns every appointment. Admin scope.
func (h *AppointmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListAll(r.Context(), session)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Admin role required")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
