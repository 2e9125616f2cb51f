package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleWindowRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
}

// ReplaceScheduleRequest swaps the professional's whole weekly schedule at
// once, one window per day of week.
type ReplaceScheduleRequest struct {
	Windows []ScheduleWindowRequest `json:"windows" validate:"required,dive"`
}

// Response DTOs

type ScheduleWindowResponse struct {
	ID        int       `json:"id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ScheduleResponse struct {
	ProfessionalID uuid.UUID                `json:"professional_id"`
	Windows        []ScheduleWindowResponse `json:"windows"`
}
