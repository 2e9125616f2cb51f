package dto

// Request DTOs

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type VerifyProfessionalRequest struct {
	IsVerified *bool `json:"is_verified" validate:"required"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
