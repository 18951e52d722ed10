package dto

type AnalyzeSymptomsRequest struct {
	Symptoms       string `json:"symptoms" validate:"required"`
	Severity       string `json:"severity" validate:"required,oneof=Mild Moderate Severe 'Very Severe'"`
	Duration       string `json:"duration"`
	Age            int    `json:"age" validate:"omitempty,gte=1,lte=120"`
	Gender         string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	MedicalHistory string `json:"medical_history"`
}

type ConditionMatch struct {
	Condition       string   `json:"condition"`
	Recommendations []string `json:"recommendations,omitempty"`
}

type AnalyzeSymptomsResponse struct {
	Matched    bool             `json:"matched"`
	Conditions []ConditionMatch `json:"conditions"`
	Severity   string           `json:"severity"`
	Duration   string           `json:"duration"`
	Advice     string           `json:"advice"`
	Disclaimer string           `json:"disclaimer"`
}
