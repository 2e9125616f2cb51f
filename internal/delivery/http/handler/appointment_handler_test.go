package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/usecase"
	"saude-connect-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubAppointmentUsecase keeps the last created appointment in memory so
// handler tests can exercise the create and read paths without a database.
type stubAppointmentUsecase struct {
	created   *dto.AppointmentResponse
	createErr error
	updateErr error
	cancelErr error
}

func (s *stubAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	if s.created == nil {
		return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
	}
	return &dto.AppointmentListResponse{
		Appointments: []dto.AppointmentResponse{*s.created},
		Total:        1,
	}, nil
}

func (s *stubAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	if s.created != nil && s.created.ID == appointmentID {
		return s.created, nil
	}
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	date, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, usecase.ErrInvalidDateTime
	}

	s.created = &dto.AppointmentResponse{
		ID:              uuid.New(),
		ProfessionalID:  uuid.MustParse(req.ProfessionalID),
		PatientID:       uuid.New(),
		AppointmentDate: date,
		Status:          "scheduled",
		Type:            req.Type,
		Notes:           req.Notes,
		Symptoms:        req.Symptoms,
	}
	return s.created, nil
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.GetAppointment(ctx, appointmentID)
}

func (s *stubAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	return s.cancelErr
}

func newCreateRequest(t *testing.T, body dto.CreateAppointmentRequest) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	return httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
}

func TestAppointmentHandlerCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		usecaseErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "slot already booked",
			usecaseErr:  usecase.ErrSlotTaken,
			wantStatus:  http.StatusConflict,
			wantMessage: "Time slot is already booked",
		},
		{
			name:        "professional not found",
			usecaseErr:  usecase.ErrProfessionalNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Professional not found",
		},
		{
			name:        "appointment in the past",
			usecaseErr:  usecase.ErrAppointmentPast,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Appointment date must be in the future",
		},
		{
			name:        "unmapped error",
			usecaseErr:  errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create appointment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{createErr: tt.usecaseErr}, validator.NewValidator())

			req := newCreateRequest(t, dto.CreateAppointmentRequest{
				ProfessionalID:  uuid.New().String(),
				AppointmentDate: "2026-09-10T14:00:00-03:00",
			})
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var envelope struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if envelope.Success {
				t.Error("expected success=false")
			}
			if envelope.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", envelope.Message, tt.wantMessage)
			}
		})
	}
}

func TestAppointmentHandlerCreateValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	// professional_id is not a UUID and the date is missing.
	req := newCreateRequest(t, dto.CreateAppointmentRequest{ProfessionalID: "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAppointmentHandlerCreateThenGet(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	professionalID := uuid.New()
	req := newCreateRequest(t, dto.CreateAppointmentRequest{
		ProfessionalID:  professionalID.String(),
		AppointmentDate: "2026-09-10T14:00:00-03:00",
		Type:            "online",
		Symptoms:        "persistent headache",
	})
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var created struct {
		Data dto.AppointmentResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.Data.Status != "scheduled" {
		t.Errorf("status = %q, want %q", created.Data.Status, "scheduled")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+created.Data.ID.String(), nil)
	getReq = mux.SetURLVars(getReq, map[string]string{"id": created.Data.ID.String()})
	getRec := httptest.NewRecorder()
	h.GetByID(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", getRec.Code, http.StatusOK)
	}

	var fetched struct {
		Data dto.AppointmentResponse `json:"data"`
	}
	if err := json.NewDecoder(getRec.Body).Decode(&fetched); err != nil {
		t.Fatalf("failed to decode get response: %v", err)
	}
	if fetched.Data.ID != created.Data.ID {
		t.Errorf("id = %s, want %s", fetched.Data.ID, created.Data.ID)
	}
	if fetched.Data.ProfessionalID != professionalID {
		t.Errorf("professional_id = %s, want %s", fetched.Data.ProfessionalID, professionalID)
	}
	if !fetched.Data.AppointmentDate.Equal(created.Data.AppointmentDate) {
		t.Errorf("appointment_date = %s, want %s", fetched.Data.AppointmentDate, created.Data.AppointmentDate)
	}
	if fetched.Data.Symptoms != "persistent headache" {
		t.Errorf("symptoms = %q, want %q", fetched.Data.Symptoms, "persistent headache")
	}
}

func TestAppointmentHandlerGetUnknownID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAppointmentHandlerCancelErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "inside cancellation window", usecaseErr: usecase.ErrCancellationWindow, wantStatus: http.StatusConflict},
		{name: "already completed", usecaseErr: usecase.ErrAppointmentCompleted, wantStatus: http.StatusConflict},
		{name: "not found", usecaseErr: usecase.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "cancellable", usecaseErr: nil, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{cancelErr: tt.usecaseErr}, validator.NewValidator())

			id := uuid.New().String()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": id})
			rec := httptest.NewRecorder()
			h.Cancel(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
