package entity

import "time"

// PatientHistoryStatusCompleted is the only status a history record ever
// carries; it is set at creation and no update path exists.
const PatientHistoryStatusCompleted = "completed"

// PatientHistory is a clinical visit record. Column names and types follow
// the persisted schema contract: date fields are plain strings, BMI is the
// caller-computed value stored verbatim.
type PatientHistory struct {
	ID                 int       `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	UserID             int       `gorm:"not null;index" json:"user_id"`
	Name               string    `gorm:"type:varchar(255)" json:"name"`
	Age                int       `json:"age"`
	Gender             string    `gorm:"type:varchar(50)" json:"gender"`
	DiseaseName        string    `gorm:"type:varchar(255)" json:"disease_name"`
	Symptoms           string    `gorm:"type:text" json:"symptoms"`
	SeverityLevel      string    `gorm:"type:varchar(50)" json:"severity_level"`
	MedicalHistory     string    `gorm:"type:text" json:"medical_history"`
	DiagnosisDate      string    `gorm:"type:varchar(50)" json:"diagnosis_date"`
	AppointmentID      *int      `json:"appointment_id,omitempty"`
	AppointmentDate    string    `gorm:"type:varchar(50)" json:"appointment_date"`
	AppointmentTime    string    `gorm:"type:varchar(50)" json:"appointment_time"`
	Status             string    `gorm:"type:varchar(50)" json:"status"`
	VisitType          string    `gorm:"type:varchar(50)" json:"visit_type"`
	HeightCM           float64   `gorm:"column:height_cm" json:"height_cm"`
	WeightKG           float64   `gorm:"column:weight_kg" json:"weight_kg"`
	BMI                float64   `gorm:"column:bmi" json:"bmi"`
	SmokingStatus      string    `gorm:"type:varchar(50)" json:"smoking_status"`
	ExerciseLevel      string    `gorm:"type:varchar(50)" json:"exercise_level"`
	TreatmentGiven     string    `gorm:"type:text" json:"treatment_given"`
	MedicinePrescribed string    `gorm:"type:text" json:"medicine_prescribed"`
	TreatmentCost      float64   `json:"treatment_cost"`
	FollowUpDate       string    `gorm:"type:varchar(50)" json:"follow_up_date"`
	TotalAmount        float64   `json:"total_amount"`
	InsuranceUsed      string    `gorm:"type:varchar(50)" json:"insurance_used"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientHistory) TableName() string {
	return "patient_history"
}
