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

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// GetByProfessional is public: it lists the recurring weekly windows of one
// professional, without occupancy applied.
func (h *ScheduleHandler) GetByProfessional(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid professional ID")
		return
	}

	schedule, err := h.scheduleUsecase.GetScheduleByProfessional(r.Context(), professionalID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.scheduleUsecase.GetMySchedule(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// ReplaceMySchedule swaps the professional's whole weekly schedule in one
// transaction.
func (h *ScheduleHandler) ReplaceMySchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.ReplaceMySchedule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.BadRequest(w, "Invalid time format, use HH:MM")
		case errors.Is(err, usecase.ErrDuplicateWeekday):
			response.BadRequest(w, "Duplicate day of week in schedule")
		default:
			response.InternalServerError(w, "Failed to replace schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule replaced successfully", schedule)
}
