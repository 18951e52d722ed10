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

type PatientHistoryHandler struct {
	historyUsecase usecase.PatientHistoryUsecase
	validator      *validator.CustomValidator
}

func NewPatientHistoryHandler(historyUsecase usecase.PatientHistoryUsecase, validator *validator.CustomValidator) *PatientHistoryHandler {
	return &PatientHistoryHandler{
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

// AddRecord persists a visit record for the authenticated user.
func (h *PatientHistoryHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.AddPatientHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.historyUsecase.AddRecord(r.Context(), session, &req)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusCreated, "Patient record added successfully", record)
}

// ListOwn returns the authenticated user's visit records.
func (h *PatientHistoryHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records := h.historyUsecase.ListOwn(r.Context(), session)
	response.Success(w, http.StatusOK, "Patient history retrieved successfully", records)
}

// ListAll returns every visit record. Admin scope.
func (h *PatientHistoryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records, err := h.historyUsecase.ListAll(r.Context(), session)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Admin role required")
		default:
			response.InternalServerError(w, "Failed to list patient history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient history retrieved successfully", records)
}
