package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/usecase"
	"saude-connect-api/pkg/response"
	"saude-connect-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ConsultationHandler serves the professional side of an appointment:
// agenda listing and the confirm/complete/no-show transitions.
type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	agenda, err := h.consultationUsecase.GetMyAgenda(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", agenda)
}

func (h *ConsultationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.consultationUsecase.ConfirmAppointment(r.Context(), appointmentID)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to confirm appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", appointment)
}

func (h *ConsultationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.consultationUsecase.CompleteAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDateFormat) {
			response.BadRequest(w, "Invalid follow-up date, use YYYY-MM-DD")
			return
		}
		h.writeTransitionError(w, err, "Failed to complete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

func (h *ConsultationHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.consultationUsecase.MarkNoShow(r.Context(), appointmentID)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to mark appointment as no-show")
		return
	}

	response.Success(w, http.StatusOK, "Appointment marked as no-show", appointment)
}

func (h *ConsultationHandler) writeTransitionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrInvalidTransition):
		response.Conflict(w, "Appointment status does not allow this transition")
	default:
		response.InternalServerError(w, fallback)
	}
}
