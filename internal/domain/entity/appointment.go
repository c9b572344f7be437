package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
	AppointmentStatusRejected AppointmentStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusRejected:
		return true
	}
	return false
}

// Appointment represents a patient booking. The patient contact fields are a
// snapshot supplied on the form, not a join against the user record.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName       string            `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName        string            `gorm:"type:varchar(255);not null" json:"last_name"`
	Email           string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string            `gorm:"type:varchar(20);not null" json:"phone"`
	NIC             string            `gorm:"type:varchar(20);not null" json:"nic"`
	DOB             time.Time         `gorm:"type:date;not null" json:"dob"`
	Gender          string            `gorm:"type:varchar(10);not null" json:"gender"`
	AppointmentDate time.Time         `gorm:"type:date;not null" json:"appointment_date"`
	Department      string            `gorm:"type:varchar(100);not null" json:"department"`
	DoctorFirstName string            `gorm:"type:varchar(255);not null" json:"doctor_first_name"`
	DoctorLastName  string            `gorm:"type:varchar(255);not null" json:"doctor_last_name"`
	Address         string            `gorm:"type:text;not null" json:"address"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	HasVisited      bool              `gorm:"not null;default:false" json:"has_visited"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting review
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
