package usecase

import (
	"context"
	"errors"
	"time"

	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/domain/entity"
	"saude-connect-api/internal/domain/repository"
	"saude-connect-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrInvalidDate          = errors.New("invalid date format, use YYYY-MM-DD")
)

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, professionalID uuid.UUID, dateStr string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db                      *gorm.DB
	log                     *logrus.Logger
	professionalProfileRepo repository.ProfessionalProfileRepository
	scheduleRepo            repository.WeeklyScheduleRepository
	appointmentRepo         repository.AppointmentRepository
	cache                   *service.AvailabilityCache
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalProfileRepo repository.ProfessionalProfileRepository,
	scheduleRepo repository.WeeklyScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	cache *service.AvailabilityCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                      db,
		log:                     log,
		professionalProfileRepo: professionalProfileRepo,
		scheduleRepo:            scheduleRepo,
		appointmentRepo:         appointmentRepo,
		cache:                   cache,
	}
}

// GetAvailability derives the open slots of one professional on one calendar
// date: the recurring weekly window expanded into 30-minute slots, minus the
// timestamps already taken by occupying appointments. Pure read; calling it
// twice against the same state yields the same answer.
func (u *availabilityUsecase) GetAvailability(ctx context.Context, professionalID uuid.UUID, dateStr string) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	professional, err := u.professionalProfileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil || !professional.Bookable() {
		return nil, ErrProfessionalNotFound
	}

	if cached := u.cache.Get(ctx, professionalID, date); cached != nil {
		return &dto.AvailabilityResponse{
			ProfessionalID: professionalID,
			Date:           dateStr,
			Available:      cached.Available,
			Slots:          cached.Slots,
		}, nil
	}

	// No window on that weekday means "does not attend", not an error.
	schedule, err := u.scheduleRepo.FindByProfessionalAndWeekday(u.db.WithContext(ctx), professionalID, int(date.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find schedule for professional %s: %+v", professionalID, err)
		return nil, err
	}
	if schedule == nil {
		resp := &dto.AvailabilityResponse{
			ProfessionalID: professionalID,
			Date:           dateStr,
			Available:      false,
			Slots:          []string{},
		}
		u.cache.Set(ctx, professionalID, date, &service.CachedAvailability{Available: false, Slots: []string{}})
		return resp, nil
	}

	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)
	appointments, err := u.appointmentRepo.FindOccupyingOnDay(u.db.WithContext(ctx), professionalID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to find appointments for professional %s: %+v", professionalID, err)
		return nil, err
	}

	slots := openSlots(schedule, appointments, date)

	u.cache.Set(ctx, professionalID, date, &service.CachedAvailability{Available: true, Slots: slots})

	return &dto.AvailabilityResponse{
		ProfessionalID: professionalID,
		Date:           dateStr,
		Available:      true,
		Slots:          slots,
	}, nil
}

// openSlots subtracts the occupied timestamps from the expanded window,
// preserving chronological order. Occupied comparison is on the exact
// timestamp; appointment duration is informational only.
func openSlots(schedule *entity.WeeklySchedule, appointments []entity.Appointment, date time.Time) []string {
	occupied := make(map[int64]struct{}, len(appointments))
	for _, appointment := range appointments {
		occupied[appointment.AppointmentDate.Unix()] = struct{}{}
	}

	candidates := schedule.SlotsOn(date)
	slots := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := occupied[slot.Unix()]; taken {
			continue
		}
		slots = append(slots, slot.Format("15:04"))
	}
	return slots
}
