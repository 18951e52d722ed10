package dto

type DiseaseCount struct {
	Disease string `json:"disease"`
	Count   int    `json:"count"`
}

type ReportSummaryResponse struct {
	TotalUsers          int            `json:"total_users"`
	TotalAppointments   int            `json:"total_appointments"`
	PendingAppointments int            `json:"pending_appointments"`
	TotalPatientVisits  int            `json:"total_patient_visits"`
	AverageAge          float64        `json:"average_age"`
	AverageBMI          float64        `json:"average_bmi"`
	TotalTreatmentCost  float64        `json:"total_treatment_cost"`
	GenderDistribution  map[string]int `json:"gender_distribution"`
	TopDiseases         []DiseaseCount `json:"top_diseases"`
}
