package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	DocumentNumber string `json:"document_number" validate:"required,min=8,max=20"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth    string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender         string `json:"gender" validate:"required,oneof=M F"`
	Address        string `json:"address" validate:"omitempty"`
}

type RegisterProfessionalRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	FullName          string `json:"full_name" validate:"required,min=2"`
	LicenseNumber     string `json:"license_number" validate:"required"`
	Specialty         string `json:"specialty" validate:"required"`
	Biography         string `json:"biography" validate:"omitempty"`
	City              string `json:"city" validate:"omitempty"`
	ConsultationPrice string `json:"consultation_price" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	Email               string                       `json:"email"`
	FullName            string                       `json:"full_name"`
	Role                string                       `json:"role"`
	IsActive            *bool                        `json:"is_active,omitempty"`
	ProfessionalProfile *ProfessionalProfileResponse `json:"professional_profile,omitempty"`
	PatientProfile      *PatientProfileResponse      `json:"patient_profile,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

type ProfessionalProfileResponse struct {
	LicenseNumber     string `json:"license_number"`
	Specialty         string `json:"specialty"`
	Biography         string `json:"biography,omitempty"`
	City              string `json:"city,omitempty"`
	ConsultationPrice string `json:"consultation_price"`
	IsVerified        bool   `json:"is_verified"`
}

type PatientProfileResponse struct {
	DocumentNumber string `json:"document_number"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Address        string `json:"address,omitempty"`
}
