package converter

import (
	"saude-connect-api/internal/delivery/dto"
	"saude-connect-api/internal/domain/entity"

	"github.com/google/uuid"
)

// SchedulesToResponse converts a professional's weekly schedule rows to the
// grouped DTO.
func SchedulesToResponse(professionalID uuid.UUID, schedules []entity.WeeklySchedule) *dto.ScheduleResponse {
	windows := make([]dto.ScheduleWindowResponse, len(schedules))
	for i, schedule := range schedules {
		windows[i] = dto.ScheduleWindowResponse{
			ID:        schedule.ID,
			DayOfWeek: schedule.DayOfWeek,
			StartTime: schedule.StartTime,
			EndTime:   schedule.EndTime,
			UpdatedAt: schedule.UpdatedAt,
		}
	}

	return &dto.ScheduleResponse{
		ProfessionalID: professionalID,
		Windows:        windows,
	}
}
