package repository

import (
	"time"

	"saude-connect-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error)
	// FindOccupyingOnDay returns the appointments that block slots for the
	// professional between dayStart (inclusive) and dayEnd (exclusive).
	FindOccupyingOnDay(db *gorm.DB, professionalID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error)
	// FindOccupyingAt returns the appointment blocking the exact timestamp,
	// or nil. excludeID skips one appointment (used when editing a date).
	FindOccupyingAt(db *gorm.DB, professionalID uuid.UUID, at time.Time, excludeID *uuid.UUID) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// UpdateStatusFrom transitions status only while the current status is in
	// the from set. Returns affected rows so callers can detect lost races.
	UpdateStatusFrom(db *gorm.DB, id uuid.UUID, to entity.AppointmentStatus, from []entity.AppointmentStatus) (int64, error)
}
