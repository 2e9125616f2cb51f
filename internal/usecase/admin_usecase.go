package usecase

import (
	"context"
	"errors"

	"saude-connect-api/internal/converter"
	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/delivery/http/middleware"
	"saude-connect-api/internal/domain/entity"
	"saude-connect-api/internal/domain/repository"
	"saude-connect-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminUsecase covers moderation: listing accounts, enabling/disabling users
// and verifying professionals.
type AdminUsecase interface {
	ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error)
	SetUserStatus(ctx context.Context, userID uuid.UUID, isActive bool) (*dto.UserResponse, error)
	VerifyProfessional(ctx context.Context, professionalID uuid.UUID, isVerified bool) (*dto.ProfessionalResponse, error)
}

type adminUsecase struct {
	db                      *gorm.DB
	log                     *logrus.Logger
	userRepo                repository.UserRepository
	professionalProfileRepo repository.ProfessionalProfileRepository
	auditService            service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalProfileRepo repository.ProfessionalProfileRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:                      db,
		log:                     log,
		userRepo:                userRepo,
		professionalProfileRepo: professionalProfileRepo,
		auditService:            auditService,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := u.userRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: total,
	}, nil
}

func (u *adminUsecase) SetUserStatus(ctx context.Context, userID uuid.UUID, isActive bool) (*dto.UserResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldStatus := user.Active()
	user.IsActive = &isActive

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionUserStatusChange,
		"user", userID.String(),
		entity.JSON{"is_active": oldStatus},
		entity.JSON{"is_active": isActive}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("User %s active=%v by admin %s", userID, isActive, adminID)
	return converter.UserToResponse(user), nil
}

func (u *adminUsecase) VerifyProfessional(ctx context.Context, professionalID uuid.UUID, isVerified bool) (*dto.ProfessionalResponse, error) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	professional, err := u.professionalProfileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	oldVerified := professional.IsVerified
	professional.IsVerified = isVerified

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.professionalProfileRepo.Update(tx, professional); err != nil {
		u.log.Warnf("Failed to update professional %s: %+v", professionalID, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &adminID, entity.AuditActionProfessionalVerify,
		"professional_profile", professionalID.String(),
		entity.JSON{"is_verified": oldVerified},
		entity.JSON{"is_verified": isVerified}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Professional %s verified=%v by admin %s", professionalID, isVerified, adminID)
	return converter.ProfessionalToResponse(professional), nil
}
