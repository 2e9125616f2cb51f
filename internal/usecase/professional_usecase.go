package usecase

import (
	"context"

	"saude-connect-api/internal/converter"
	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/domain/entity"
	"saude-connect-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfessionalUsecase interface {
	Search(ctx context.Context, req *dto.SearchProfessionalsRequest) (*dto.ProfessionalListResponse, *entity.ProfessionalFilter, error)
	GetProfile(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error)
}

type professionalUsecase struct {
	db                      *gorm.DB
	log                     *logrus.Logger
	professionalProfileRepo repository.ProfessionalProfileRepository
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalProfileRepo repository.ProfessionalProfileRepository,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:                      db,
		log:                     log,
		professionalProfileRepo: professionalProfileRepo,
	}
}

// Search lists verified, active professionals matching the optional filters.
// The normalized filter is returned alongside so the handler can build
// pagination metadata.
func (u *professionalUsecase) Search(ctx context.Context, req *dto.SearchProfessionalsRequest) (*dto.ProfessionalListResponse, *entity.ProfessionalFilter, error) {
	filter := &entity.ProfessionalFilter{
		Name:      req.Name,
		Specialty: req.Specialty,
		City:      req.City,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Page:      req.Page,
		Limit:     req.Limit,
	}
	filter.Normalize()

	profiles, total, err := u.professionalProfileRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search professionals: %+v", err)
		return nil, nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(profiles),
		Total:         total,
	}, filter, nil
}

func (u *professionalUsecase) GetProfile(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalProfileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil || !professional.Bookable() {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}
