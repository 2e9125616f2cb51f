package repository

import (
	"errors"

	"saude-connect-api/internal/domain/entity"
	domainRepo "saude-connect-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalProfileRepository struct{}

func NewProfessionalProfileRepository() domainRepo.ProfessionalProfileRepository {
	return &professionalProfileRepository{}
}

func (r *professionalProfileRepository) Create(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Create(profile).Error
}

func (r *professionalProfileRepository) FindByUserID(db *gorm.DB, professionalID uuid.UUID) (*entity.ProfessionalProfile, error) {
	var profile entity.ProfessionalProfile
	err := db.Preload("User").Where("user_id = ?", professionalID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Search lists verified professionals with active accounts. Every optional
// filter contributes one predicate with its own bound parameter, so no query
// text is ever built by concatenating user input.
func (r *professionalProfileRepository) Search(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.ProfessionalProfile, int64, error) {
	query := db.Model(&entity.ProfessionalProfile{}).
		Joins("JOIN users ON users.id = professional_profiles.user_id").
		Where("users.is_active = ?", true).
		Where("professional_profiles.is_verified = ?", true)

	if filter != nil {
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Specialty != "" {
			query = query.Where("professional_profiles.specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.City != "" {
			query = query.Where("professional_profiles.city ILIKE ?", "%"+filter.City+"%")
		}
		if filter.MinPrice != "" {
			query = query.Where("professional_profiles.consultation_price >= ?", filter.MinPrice)
		}
		if filter.MaxPrice != "" {
			query = query.Where("professional_profiles.consultation_price <= ?", filter.MaxPrice)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []entity.ProfessionalProfile
	err := query.
		Preload("User").
		Order("users.full_name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *professionalProfileRepository) Update(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Omit("User").Save(profile).Error
}
