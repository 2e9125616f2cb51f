package service

import (
	"errors"
	"io"
	"testing"

	"saude-connect-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubAuditLogRepository struct {
	createErr error
	last      *entity.AuditLog
}

func (s *stubAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.last = log
	return nil
}

func (s *stubAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

func (s *stubAuditLogRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditServiceRecord(t *testing.T) {
	repo := &stubAuditLogRepository{}
	svc := NewAuditService(quietLogger(), repo)

	userID := uuid.New()
	err := svc.Record(nil, &userID, entity.AuditActionAppointmentCreate,
		"appointment", "a-1", nil, entity.JSON{"status": "scheduled"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected an audit log to be created")
	}
	if repo.last.Action != entity.AuditActionAppointmentCreate {
		t.Errorf("action = %q, want %q", repo.last.Action, entity.AuditActionAppointmentCreate)
	}
	if repo.last.Metadata["entity"] != "appointment" || repo.last.Metadata["entity_id"] != "a-1" {
		t.Errorf("metadata = %v, missing entity fields", repo.last.Metadata)
	}
}

func TestAuditServiceRecordPropagatesFailure(t *testing.T) {
	repoErr := errors.New("insert failed")
	svc := NewAuditService(quietLogger(), &stubAuditLogRepository{createErr: repoErr})

	userID := uuid.New()
	err := svc.Record(nil, &userID, entity.AuditActionAppointmentCancel,
		"appointment", "a-1", nil, nil)
	if !errors.Is(err, repoErr) {
		t.Errorf("Record() error = %v, want %v", err, repoErr)
	}
}
