package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/service"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/response"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/validator"
)

type DiagnosisHandler struct {
	diagnosisService service.DiagnosisService
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisService service.DiagnosisService, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisService: diagnosisService,
		validator:        validator,
	}
}

// Analyze matches free-text symptoms against the static condition tables.
func (h *DiagnosisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeSymptomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.diagnosisService.Analyze(&req)
	response.Success(w, http.StatusOK, "Analysis complete", result)
}
