package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/service"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/response"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/validator"
)

type WellnessHandler struct {
	wellnessService service.WellnessService
	validator       *validator.CustomValidator
}

func NewWellnessHandler(wellnessService service.WellnessService, validator *validator.CustomValidator) *WellnessHandler {
	return &WellnessHandler{
		wellnessService: wellnessService,
		validator:       validator,
	}
}

func (h *WellnessHandler) BMI(w http.ResponseWriter, r *http.Request) {
	var req dto.BMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Success(w, http.StatusOK, "BMI calculated", h.wellnessService.BMI(&req))
}

func (h *WellnessHandler) Calories(w http.ResponseWriter, r *http.Request) {
	var req dto.CalorieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.wellnessService.Calories(&req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Daily calories calculated", result)
}

func (h *WellnessHandler) WaterIntake(w http.ResponseWriter, r *http.Request) {
	var req dto.WaterIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.wellnessService.WaterIntake(&req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Water intake calculated", result)
}
