package handler

import (
	"encoding/json"
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

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r, 20)

	users, err := h.adminUsecase.ListUsers(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	meta := response.NewMeta(page, limit, users.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Users retrieved successfully", users.Users, meta)
}

func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req dto.SetUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.SetUserStatus(r.Context(), userID, *req.IsActive)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to update user status")
		return
	}

	response.Success(w, http.StatusOK, "User status updated successfully", user)
}

func (h *AdminHandler) VerifyProfessional(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid professional ID")
		return
	}

	var req dto.VerifyProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.adminUsecase.VerifyProfessional(r.Context(), professionalID, *req.IsVerified)
	if err != nil {
		if errors.Is(err, usecase.ErrProfessionalNotFound) {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to update professional verification")
		return
	}

	response.Success(w, http.StatusOK, "Professional verification updated successfully", professional)
}

func pagination(r *http.Request, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}
