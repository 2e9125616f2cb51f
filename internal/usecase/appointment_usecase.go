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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSlotTaken            = errors.New("time slot is already booked")
	ErrAppointmentPast      = errors.New("cannot book a past time")
	ErrAppointmentCompleted = errors.New("cannot modify a completed appointment")
	ErrAppointmentFinal     = errors.New("appointment is already cancelled or closed")
	ErrCancellationWindow   = errors.New("cancellation window has passed")
	ErrInvalidDateTime      = errors.New("invalid appointment date, use RFC 3339")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db                      *gorm.DB
	log                     *logrus.Logger
	appointmentRepo         repository.AppointmentRepository
	professionalProfileRepo repository.ProfessionalProfileRepository
	auditService            service.AuditService
	cache                   *service.AvailabilityCache

	// now is swappable so the notice-window boundary is testable.
	now func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	professionalProfileRepo repository.ProfessionalProfileRepository,
	auditService service.AuditService,
	cache *service.AvailabilityCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                      db,
		log:                     log,
		appointmentRepo:         appointmentRepo,
		professionalProfileRepo: professionalProfileRepo,
		auditService:            auditService,
		cache:                   cache,
		now:                     time.Now,
	}
}

// GetMyAppointments returns all appointments of the logged-in patient
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	// Someone else's appointment is indistinguishable from a missing one.
	if appointment == nil || appointment.PatientID != patientID {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CreateAppointment books a slot for the logged-in patient.
//
// Flow:
// 1. Validate the professional exists, is active and verified
// 2. Pre-check the slot for a friendly conflict error
// 3. Insert with the price snapshotted from the professional
// 4. A unique-violation on insert is the authoritative conflict signal: the
//    partial unique index on (professional_id, appointment_date) decides
//    races the pre-check cannot see
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	professionalID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		return nil, ErrProfessionalNotFound
	}

	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	if appointmentDate.Before(u.now()) {
		return nil, ErrAppointmentPast
	}

	professional, err := u.professionalProfileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil || !professional.Bookable() {
		return nil, ErrProfessionalNotFound
	}

	existing, err := u.appointmentRepo.FindOccupyingAt(u.db.WithContext(ctx), professionalID, appointmentDate, nil)
	if err != nil {
		u.log.Warnf("Failed to check slot conflict: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	appointmentType := entity.AppointmentType(req.Type)
	if appointmentType == "" {
		appointmentType = entity.AppointmentTypePresential
	}

	appointment := &entity.Appointment{
		ProfessionalID:  professionalID,
		PatientID:       patientID,
		AppointmentDate: appointmentDate,
		Status:          entity.AppointmentStatusScheduled,
		Type:            appointmentType,
		Notes:           req.Notes,
		Symptoms:        req.Symptoms,
		Price:           professional.ConsultationPrice,
		PaymentStatus:   entity.PaymentStatusPending,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uniq_appointment_slot") {
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), nil, entity.JSON{
			"professional_id":  professionalID.String(),
			"appointment_date": appointmentDate,
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx, professionalID, appointmentDate)

	u.log.Infof("Appointment created: id=%s, professional=%s, date=%s",
		appointment.ID, professionalID, appointmentDate.Format(time.RFC3339))
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment applies a partial edit: provided fields overwrite, omitted
// fields stay. A date change goes through the same conflict check as booking.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil || appointment.PatientID != patientID {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Editable() {
		return nil, ErrAppointmentCompleted
	}

	oldDate := appointment.AppointmentDate
	dateChanged := false

	if req.AppointmentDate != "" {
		newDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		if !newDate.Equal(appointment.AppointmentDate) {
			if newDate.Before(u.now()) {
				return nil, ErrAppointmentPast
			}

			conflict, err := u.appointmentRepo.FindOccupyingAt(u.db.WithContext(ctx), appointment.ProfessionalID, newDate, &appointment.ID)
			if err != nil {
				u.log.Warnf("Failed to check slot conflict: %+v", err)
				return nil, err
			}
			if conflict != nil {
				return nil, ErrSlotTaken
			}

			appointment.AppointmentDate = newDate
			dateChanged = true
		}
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}
	if req.Symptoms != "" {
		appointment.Symptoms = req.Symptoms
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uniq_appointment_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentUpdate,
		"appointment", appointment.ID.String(),
		entity.JSON{"appointment_date": oldDate},
		entity.JSON{"appointment_date": appointment.AppointmentDate}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if dateChanged {
		u.cache.Invalidate(ctx, appointment.ProfessionalID, oldDate, appointment.AppointmentDate)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment soft-cancels the patient's appointment.
//
// Guards, in order:
// 1. Ownership (not owned reads as not found)
// 2. Completed appointments are immutable
// 3. Only scheduled/confirmed may transition to cancelled
// 4. Strict notice window: exactly 24h before is the last permitted instant
// The status flip is conditional on the current status so a concurrent
// completion or second cancel loses cleanly.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil || appointment.PatientID != patientID {
		return ErrAppointmentNotFound
	}

	if appointment.IsCompleted() {
		return ErrAppointmentCompleted
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusCancelled) {
		return ErrAppointmentFinal
	}
	if !appointment.CancellableAt(u.now()) {
		return ErrCancellationWindow
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatusFrom(tx, appointmentID,
		entity.AppointmentStatusCancelled,
		[]entity.AppointmentStatus{entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed})
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentFinal
	}

	if err := u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentCancel,
		"appointment", appointment.ID.String(),
		entity.JSON{"status": string(appointment.Status)},
		entity.JSON{"status": string(entity.AppointmentStatusCancelled)}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.cache.Invalidate(ctx, appointment.ProfessionalID, appointment.AppointmentDate)

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}
