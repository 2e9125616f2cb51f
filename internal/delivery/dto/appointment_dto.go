package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ProfessionalID  string `json:"professional_id" validate:"required,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"required"` // RFC 3339
	Type            string `json:"type" validate:"omitempty,oneof=presential online"`
	Notes           string `json:"notes" validate:"omitempty"`
	Symptoms        string `json:"symptoms" validate:"omitempty"`
}

// UpdateAppointmentRequest is a partial update: empty fields keep their
// stored value.
type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"omitempty"` // RFC 3339
	Notes           string `json:"notes" validate:"omitempty"`
	Symptoms        string `json:"symptoms" validate:"omitempty"`
}

type CompleteAppointmentRequest struct {
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Prescription string `json:"prescription" validate:"omitempty"`
	FollowUpDate string `json:"follow_up_date" validate:"omitempty"` // Format: YYYY-MM-DD
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID             `json:"id"`
	ProfessionalID  uuid.UUID             `json:"professional_id"`
	PatientID       uuid.UUID             `json:"patient_id"`
	AppointmentDate time.Time             `json:"appointment_date"`
	Status          string                `json:"status"`
	Type            string                `json:"type"`
	Notes           string                `json:"notes,omitempty"`
	Symptoms        string                `json:"symptoms,omitempty"`
	Diagnosis       string                `json:"diagnosis,omitempty"`
	Prescription    string                `json:"prescription,omitempty"`
	FollowUpDate    *time.Time            `json:"follow_up_date,omitempty"`
	Price           string                `json:"price"`
	PaymentStatus   string                `json:"payment_status"`
	Professional    *ProfessionalResponse `json:"professional,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
