package usecase

import (
	"testing"
	"time"

	"saude-connect-api/internal/domain/entity"
)

func TestOpenSlots(t *testing.T) {
	// 2025-06-09 is a Monday.
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	schedule := &entity.WeeklySchedule{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"}

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 9, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		appointments []entity.Appointment
		expect       []string
	}{
		{
			name:         "no appointments",
			appointments: nil,
			expect:       []string{"08:00", "08:30", "09:00", "09:30"},
		},
		{
			name: "one slot taken",
			appointments: []entity.Appointment{
				{AppointmentDate: at(8, 30)},
			},
			expect: []string{"08:00", "09:00", "09:30"},
		},
		{
			name: "all slots taken",
			appointments: []entity.Appointment{
				{AppointmentDate: at(8, 0)},
				{AppointmentDate: at(8, 30)},
				{AppointmentDate: at(9, 0)},
				{AppointmentDate: at(9, 30)},
			},
			expect: []string{},
		},
		{
			name: "appointment outside the window is ignored",
			appointments: []entity.Appointment{
				{AppointmentDate: at(14, 0)},
			},
			expect: []string{"08:00", "08:30", "09:00", "09:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := openSlots(schedule, tt.appointments, date)

			if len(slots) != len(tt.expect) {
				t.Fatalf("openSlots() = %v, want %v", slots, tt.expect)
			}
			for i := range slots {
				if slots[i] != tt.expect[i] {
					t.Errorf("slot[%d] = %s, want %s", i, slots[i], tt.expect[i])
				}
			}
			for i := 1; i < len(slots); i++ {
				if slots[i] <= slots[i-1] {
					t.Errorf("slots are not strictly increasing: %v", slots)
				}
			}
		})
	}
}
