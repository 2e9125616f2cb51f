package repository

import (
	"saude-connect-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeeklyScheduleRepository interface {
	FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.WeeklySchedule, error)
	FindByProfessionalAndWeekday(db *gorm.DB, professionalID uuid.UUID, dayOfWeek int) (*entity.WeeklySchedule, error)
	ReplaceForProfessional(db *gorm.DB, professionalID uuid.UUID, schedules []entity.WeeklySchedule) error
}
