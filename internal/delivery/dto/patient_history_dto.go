package dto

import "time"

// AddPatientHistoryRequest is the caller-supplied field bag for a visit
// record. Absent fields persist as zero values. The diagnosis date is not
// accepted from the caller; the server stamps it. BMI is whatever the
// caller computed.
type AddPatientHistoryRequest struct {
	Name               string  `json:"name" validate:"required"`
	Age                int     `json:"age" validate:"required,gte=1,lte=150"`
	Gender             string  `json:"gender" validate:"required,oneof=Male Female Other"`
	DiseaseName        string  `json:"disease_name" validate:"required"`
	Symptoms           string  `json:"symptoms"`
	SeverityLevel      string  `json:"severity_level" validate:"omitempty,oneof=Mild Moderate Severe"`
	MedicalHistory     string  `json:"medical_history"`
	HeightCM           float64 `json:"height_cm" validate:"omitempty,gte=50,lte=250"`
	WeightKG           float64 `json:"weight_kg" validate:"omitempty,gte=10,lte=200"`
	BMI                float64 `json:"bmi"`
	SmokingStatus      string  `json:"smoking_status" validate:"omitempty,oneof=Never Former Current"`
	ExerciseLevel      string  `json:"exercise_level" validate:"omitempty,oneof=Sedentary Light Moderate Vigorous"`
	TreatmentGiven     string  `json:"treatment_given"`
	MedicinePrescribed string  `json:"medicine_prescribed"`
	TreatmentCost      float64 `json:"treatment_cost" validate:"omitempty,gte=0"`
	FollowUpDate       string  `json:"follow_up_date"`
	TotalAmount        float64 `json:"total_amount" validate:"omitempty,gte=0"`
	InsuranceUsed      string  `json:"insurance_used"`
}

type PatientHistoryResponse struct {
	PatientID          int       `json:"patient_id"`
	UserID             int       `json:"user_id"`
	Name               string    `json:"name"`
	Age                int       `json:"age"`
	Gender             string    `json:"gender"`
	DiseaseName        string    `json:"disease_name"`
	Symptoms           string    `json:"symptoms"`
	SeverityLevel      string    `json:"severity_level"`
	MedicalHistory     string    `json:"medical_history"`
	DiagnosisDate      string    `json:"diagnosis_date"`
	Status             string    `json:"status"`
	HeightCM           float64   `json:"height_cm"`
	WeightKG           float64   `json:"weight_kg"`
	BMI                float64   `json:"bmi"`
	SmokingStatus      string    `json:"smoking_status"`
	ExerciseLevel      string    `json:"exercise_level"`
	TreatmentGiven     string    `json:"treatment_given"`
	MedicinePrescribed string    `json:"medicine_prescribed"`
	TreatmentCost      float64   `json:"treatment_cost"`
	FollowUpDate       string    `json:"follow_up_date"`
	TotalAmount        float64   `json:"total_amount"`
	InsuranceUsed      string    `json:"insurance_used"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
