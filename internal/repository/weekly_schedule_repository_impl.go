package repository

import (
	"errors"

	"saude-connect-api/internal/domain/entity"
	domainRepo "saude-connect-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type weeklyScheduleRepository struct{}

func NewWeeklyScheduleRepository() domainRepo.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{}
}

func (r *weeklyScheduleRepository) FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.WeeklySchedule, error) {
	var schedules []entity.WeeklySchedule
	err := db.Where("professional_id = ?", professionalID).
		Order("day_of_week ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *weeklyScheduleRepository) FindByProfessionalAndWeekday(db *gorm.DB, professionalID uuid.UUID, dayOfWeek int) (*entity.WeeklySchedule, error) {
	var schedule entity.WeeklySchedule
	err := db.Where("professional_id = ? AND day_of_week = ?", professionalID, dayOfWeek).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// ReplaceForProfessional swaps the professional's whole weekly schedule.
// Callers are expected to run it inside a transaction.
func (r *weeklyScheduleRepository) ReplaceForProfessional(db *gorm.DB, professionalID uuid.UUID, schedules []entity.WeeklySchedule) error {
	if err := db.Where("professional_id = ?", professionalID).
		Delete(&entity.WeeklySchedule{}).Error; err != nil {
		return err
	}
	if len(schedules) == 0 {
		return nil
	}
	return db.Create(&schedules).Error
}
