package repository

import (
	"errors"
	"time"

	"saude-connect-api/internal/domain/entity"
	domainRepo "saude-connect-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Professional.User").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Professional.User").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("professional_id = ?", professionalID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindOccupyingOnDay(db *gorm.DB, professionalID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("professional_id = ?", professionalID).
		Where("appointment_date >= ? AND appointment_date < ?", dayStart, dayEnd).
		Where("status IN ?", entity.OccupyingStatuses()).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindOccupyingAt(db *gorm.DB, professionalID uuid.UUID, at time.Time, excludeID *uuid.UUID) (*entity.Appointment, error) {
	query := db.Where("professional_id = ? AND appointment_date = ?", professionalID, at).
		Where("status IN ?", entity.OccupyingStatuses())
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Professional", "Patient").Save(appointment).Error
}

// UpdateStatusFrom transitions the status atomically: the row is touched only
// while its current status is still in the from set, so two concurrent
// transitions cannot both win. 0 affected rows means the guard lost the race.
func (r *appointmentRepository) UpdateStatusFrom(db *gorm.DB, id uuid.UUID, to entity.AppointmentStatus, from []entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
