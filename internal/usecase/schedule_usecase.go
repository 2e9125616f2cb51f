package usecase

import (
	"context"
	"errors"
	"time"

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

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrDuplicateWeekday  = errors.New("duplicate day of week in schedule")
)

// ScheduleUsecase manages the professional's weekly recurring availability.
type ScheduleUsecase interface {
	GetMySchedule(ctx context.Context) (*dto.ScheduleResponse, error)
	ReplaceMySchedule(ctx context.Context, req *dto.ReplaceScheduleRequest) (*dto.ScheduleResponse, error)
	GetScheduleByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.ScheduleResponse, error)
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.WeeklyScheduleRepository
	auditService service.AuditService
	cache        *service.AvailabilityCache
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.WeeklyScheduleRepository,
	auditService service.AuditService,
	cache *service.AvailabilityCache,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
		cache:        cache,
	}
}

func (u *scheduleUsecase) GetMySchedule(ctx context.Context) (*dto.ScheduleResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	return u.GetScheduleByProfessional(ctx, professionalID)
}

func (u *scheduleUsecase) GetScheduleByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindByProfessionalID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find schedules for professional %s: %+v", professionalID, err)
		return nil, err
	}

	return converter.SchedulesToResponse(professionalID, schedules), nil
}

// ReplaceMySchedule swaps the whole weekly schedule in one transaction. A
// window with start >= end is accepted and simply yields no slots; only the
// time format and weekday uniqueness are validated here.
func (u *scheduleUsecase) ReplaceMySchedule(ctx context.Context, req *dto.ReplaceScheduleRequest) (*dto.ScheduleResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	seen := make(map[int]bool, len(req.Windows))
	schedules := make([]entity.WeeklySchedule, 0, len(req.Windows))
	for _, window := range req.Windows {
		if _, err := time.Parse("15:04", window.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if _, err := time.Parse("15:04", window.EndTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if seen[window.DayOfWeek] {
			return nil, ErrDuplicateWeekday
		}
		seen[window.DayOfWeek] = true

		schedules = append(schedules, entity.WeeklySchedule{
			ProfessionalID: professionalID,
			DayOfWeek:      window.DayOfWeek,
			StartTime:      window.StartTime,
			EndTime:        window.EndTime,
		})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.scheduleRepo.ReplaceForProfessional(tx, professionalID, schedules); err != nil {
		if isDuplicateKeyError(err, "uniq_professional_weekday") {
			return nil, ErrDuplicateWeekday
		}
		u.log.Warnf("Failed to replace schedule for professional %s: %+v", professionalID, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &professionalID, entity.AuditActionScheduleReplace,
		"weekly_schedule", professionalID.String(), nil,
		entity.JSON{"windows": len(schedules)}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// All cached days are derived from the old windows.
	u.cache.InvalidateAll(ctx, professionalID)

	u.log.Infof("Weekly schedule replaced: professional=%s, windows=%d", professionalID, len(schedules))
	return u.GetScheduleByProfessional(ctx, professionalID)
}
