package converter

import (
	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.ProfessionalProfile != nil {
		response.ProfessionalProfile = &dto.ProfessionalProfileResponse{
			LicenseNumber:     user.ProfessionalProfile.LicenseNumber,
			Specialty:         user.ProfessionalProfile.Specialty,
			Biography:         user.ProfessionalProfile.Biography,
			City:              user.ProfessionalProfile.City,
			ConsultationPrice: user.ProfessionalProfile.ConsultationPrice.StringFixed(2),
			IsVerified:        user.ProfessionalProfile.IsVerified,
		}
	}

	if user.PatientProfile != nil {
		response.PatientProfile = &dto.PatientProfileResponse{
			DocumentNumber: user.PatientProfile.DocumentNumber,
			PhoneNumber:    user.PatientProfile.PhoneNumber,
			DateOfBirth:    user.PatientProfile.DateOfBirth.Format("2006-01-02"),
			Gender:         user.PatientProfile.Gender,
			Address:        user.PatientProfile.Address,
		}
	}

	return response
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
