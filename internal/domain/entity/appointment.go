package entity

import "time"

// AppointmentStatus values. Only pending is ever distinguished in current
// logic; appointments are created pending and no operation transitions them.
const (
	AppointmentStatusPending = "pending"
)

// Appointment is a scheduling request owned by exactly one user. Date and
// time are stored as the caller-formatted strings of the original schema.
type Appointment struct {
	ID              int       `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	UserID          int       `gorm:"not null;index" json:"user_id"`
	AppointmentDate string    `gorm:"type:varchar(50);not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:varchar(50);not null" json:"appointment_time"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	AdminNotes      string    `gorm:"type:text" json:"admin_notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending reports whether the appointment is still awaiting handling.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
