package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// SearchProfessionalsRequest carries the optional public-search filters,
// bound from query parameters.
type SearchProfessionalsRequest struct {
	Name      string `json:"name" validate:"omitempty"`
	Specialty string `json:"specialty" validate:"omitempty"`
	City      string `json:"city" validate:"omitempty"`
	MinPrice  string `json:"min_price" validate:"omitempty,numeric"`
	MaxPrice  string `json:"max_price" validate:"omitempty,numeric"`
	Page      int    `json:"page" validate:"omitempty,min=1"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type ProfessionalResponse struct {
	ID                uuid.UUID `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	LicenseNumber     string    `json:"license_number"`
	Specialty         string    `json:"specialty"`
	Biography         string    `json:"biography,omitempty"`
	City              string    `json:"city,omitempty"`
	ConsultationPrice string    `json:"consultation_price"`
	IsVerified        bool      `json:"is_verified"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int64                  `json:"total"`
}

// AvailabilityResponse lists the open slot start times for one calendar day.
// Slots are "HH:MM" strings, chronologically ordered. Available is false when
// the professional has no schedule window on that weekday.
type AvailabilityResponse struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
	Date           string    `json:"date"`
	Available      bool      `json:"available"`
	Slots          []string  `json:"slots"`
}
