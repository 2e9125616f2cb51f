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

var ErrInvalidTransition = errors.New("appointment status does not allow this transition")

// ConsultationUsecase covers the professional-side workflow: attending the
// agenda, confirming bookings, closing consultations with clinical notes and
// flagging no-shows.
type ConsultationUsecase interface {
	GetMyAgenda(ctx context.Context) (*dto.AppointmentListResponse, error)
	ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error)
	MarkNoShow(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type consultationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	cache           *service.AvailabilityCache
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	cache *service.AvailabilityCache,
) ConsultationUsecase {
	return &consultationUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		cache:           cache,
	}
}

func (u *consultationUsecase) GetMyAgenda(ctx context.Context) (*dto.AppointmentListResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByProfessionalID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for professional %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *consultationUsecase) ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusConfirmed,
		[]entity.AppointmentStatus{entity.AppointmentStatusScheduled},
		entity.AuditActionAppointmentConfirm, nil)
}

// CompleteAppointment closes the consultation and records the clinical
// outcome. Completed is terminal: the row becomes immutable for patients.
func (u *consultationUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	var followUp *time.Time
	if req.FollowUpDate != "" {
		parsed, err := time.Parse("2006-01-02", req.FollowUpDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		followUp = &parsed
	}

	return u.transition(ctx, appointmentID, entity.AppointmentStatusCompleted,
		[]entity.AppointmentStatus{entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed},
		entity.AuditActionAppointmentComplete,
		func(appointment *entity.Appointment) {
			appointment.Diagnosis = req.Diagnosis
			appointment.Prescription = req.Prescription
			appointment.FollowUpDate = followUp
		})
}

func (u *consultationUsecase) MarkNoShow(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusNoShow,
		[]entity.AppointmentStatus{entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed},
		entity.AuditActionAppointmentNoShow, nil)
}

// transition moves the professional's own appointment to the target status.
// The conditional status update decides races; mutate, when present, applies
// the clinical fields after the flip on the same transaction.
func (u *consultationUsecase) transition(
	ctx context.Context,
	appointmentID uuid.UUID,
	target entity.AppointmentStatus,
	from []entity.AppointmentStatus,
	auditAction string,
	mutate func(*entity.Appointment),
) (*dto.AppointmentResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil || appointment.ProfessionalID != professionalID {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatusFrom(tx, appointmentID, target, from)
	if err != nil {
		u.log.Warnf("Failed to transition appointment %s to %s: %+v", appointmentID, target, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	oldStatus := appointment.Status
	appointment.Status = target
	if mutate != nil {
		mutate(appointment)
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to save appointment %s: %+v", appointmentID, err)
			return nil, err
		}
	}

	if err := u.auditService.Record(tx, &professionalID, auditAction,
		"appointment", appointment.ID.String(),
		entity.JSON{"status": string(oldStatus)},
		entity.JSON{"status": string(target)}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// No-show frees the slot for rebooking.
	if target == entity.AppointmentStatusNoShow {
		u.cache.Invalidate(ctx, professionalID, appointment.AppointmentDate)
	}

	u.log.Infof("Appointment %s transitioned to %s", appointmentID, target)
	return converter.AppointmentToResponse(appointment), nil
}
