package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=3"`
	LastName        string `json:"last_name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=11"`
	NIC             string `json:"nic" validate:"required,len=13"`
	DOB             string `json:"dob" validate:"required"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Department      string `json:"department" validate:"required"`
	DoctorFirstName string `json:"doctor_first_name" validate:"required"`
	DoctorLastName  string `json:"doctor_last_name" validate:"required"`
	Address         string `json:"address" validate:"required"`
	HasVisited      bool   `json:"has_visited"`
}

type UpdateAppointmentRequest struct {
	Status     string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	HasVisited *bool  `json:"has_visited" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	NIC             string    `json:"nic"`
	DOB             string    `json:"dob"`
	Gender          string    `json:"gender"`
	AppointmentDate string    `json:"appointment_date"`
	Department      string    `json:"department"`
	DoctorFirstName string    `json:"doctor_first_name"`
	DoctorLastName  string    `json:"doctor_last_name"`
	Address         string    `json:"address"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	PatientID       uuid.UUID `json:"patient_id"`
	HasVisited      bool      `json:"has_visited"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
