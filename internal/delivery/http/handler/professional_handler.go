package handler

import (
	"errors"
	"net/http"
	"strconv"

	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/usecase"
	"saude-connect-api/pkg/response"
	"saude-connect-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(
	professionalUsecase usecase.ProfessionalUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	validator *validator.CustomValidator,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// Search is a public endpoint: only verified, active professionals are listed.
func (h *ProfessionalHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := dto.SearchProfessionalsRequest{
		Name:      query.Get("name"),
		Specialty: query.Get("specialty"),
		City:      query.Get("city"),
		MinPrice:  query.Get("min_price"),
		MaxPrice:  query.Get("max_price"),
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		req.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		req.Limit = limit
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, filter, err := h.professionalUsecase.Search(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to search professionals")
		return
	}

	meta := response.NewMeta(filter.Page, filter.Limit, result.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Professionals retrieved successfully", result.Professionals, meta)
}

func (h *ProfessionalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid professional ID")
		return
	}

	professional, err := h.professionalUsecase.GetProfile(r.Context(), professionalID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfessionalNotFound) {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid professional ID")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required")
		return
	}

	availability, err := h.availabilityUsecase.GetAvailability(r.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		case errors.Is(err, usecase.ErrProfessionalNotFound):
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}
