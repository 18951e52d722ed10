package converter

import (
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

func PatientHistoryToResponse(record *entity.PatientHistory) *dto.PatientHistoryResponse {
	if record == nil {
		return nil
	}

	return &dto.PatientHistoryResponse{
		PatientID:          record.ID,
		UserID:             record.UserID,
		Name:               record.Name,
		Age:                record.Age,
		Gender:             record.Gender,
		DiseaseName:        record.DiseaseName,
		Symptoms:           record.Symptoms,
		SeverityLevel:      record.SeverityLevel,
		MedicalHistory:     record.MedicalHistory,
		DiagnosisDate:      record.DiagnosisDate,
		Status:             record.Status,
		HeightCM:           record.HeightCM,
		WeightKG:           record.WeightKG,
		BMI:                record.BMI,
		SmokingStatus:      record.SmokingStatus,
		ExerciseLevel:      record.ExerciseLevel,
		TreatmentGiven:     record.TreatmentGiven,
		MedicinePrescribed: record.MedicinePrescribed,
		TreatmentCost:      record.TreatmentCost,
		FollowUpDate:       record.FollowUpDate,
		TotalAmount:        record.TotalAmount,
		InsuranceUsed:      record.InsuranceUsed,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

func PatientHistoriesToResponse(records []entity.PatientHistory) []dto.PatientHistoryResponse {
	responses := make([]dto.PatientHistoryResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *PatientHistoryToResponse(&records[i]))
	}
	return responses
}
