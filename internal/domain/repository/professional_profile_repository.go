package repository

import (
	"saude-connect-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ProfessionalProfile) error
	FindByUserID(db *gorm.DB, professionalID uuid.UUID) (*entity.ProfessionalProfile, error)
	Search(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.ProfessionalProfile, int64, error)
	Update(db *gorm.DB, profile *entity.ProfessionalProfile) error
}
