package converter

import (
	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		ProfessionalID:  appointment.ProfessionalID,
		PatientID:       appointment.PatientID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		Type:            string(appointment.Type),
		Notes:           appointment.Notes,
		Symptoms:        appointment.Symptoms,
		Diagnosis:       appointment.Diagnosis,
		Prescription:    appointment.Prescription,
		FollowUpDate:    appointment.FollowUpDate,
		Price:           appointment.Price.StringFixed(2),
		PaymentStatus:   string(appointment.PaymentStatus),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Professional.UserID != uuid.Nil {
		response.Professional = ProfessionalToResponse(&appointment.Professional)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
