package converter

import (
	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/domain/entity"
)

// ProfessionalToResponse converts a ProfessionalProfile entity to its DTO
func ProfessionalToResponse(profile *entity.ProfessionalProfile) *dto.ProfessionalResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:                profile.UserID,
		FullName:          profile.User.FullName,
		Email:             profile.User.Email,
		LicenseNumber:     profile.LicenseNumber,
		Specialty:         profile.Specialty,
		Biography:         profile.Biography,
		City:              profile.City,
		ConsultationPrice: profile.ConsultationPrice.StringFixed(2),
		IsVerified:        profile.IsVerified,
	}
}

// ProfessionalsToResponses converts a slice of profiles to DTOs
func ProfessionalsToResponses(profiles []entity.ProfessionalProfile) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(profiles))
	for i, profile := range profiles {
		resp := ProfessionalToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
