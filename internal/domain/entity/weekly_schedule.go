package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotInterval is the fixed width of a bookable consultation slot.
const SlotInterval = 30 * time.Minute

// WeeklySchedule represents one recurring availability window of a
// professional. DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday.
// At most one row per (professional, day_of_week).
type WeeklySchedule struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_professional_weekday" json:"professional_id"`
	DayOfWeek      int       `gorm:"not null;uniqueIndex:uniq_professional_weekday" json:"day_of_week"`
	StartTime      string    `gorm:"type:time;not null" json:"start_time"`
	EndTime        string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional ProfessionalProfile `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (WeeklySchedule) TableName() string {
	return "weekly_schedules"
}

// SlotsOn expands the window into candidate slot start timestamps on the
// given calendar date, from StartTime inclusive to EndTime exclusive.
// A window whose start is not strictly before its end yields no slots.
// Malformed times yield no slots as well; format is validated at write time.
func (s *WeeklySchedule) SlotsOn(date time.Time) []time.Time {
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return nil
	}

	year, month, day := date.Date()
	loc := date.Location()
	cursor := time.Date(year, month, day, start.Hour(), start.Minute(), 0, 0, loc)
	limit := time.Date(year, month, day, end.Hour(), end.Minute(), 0, 0, loc)

	var slots []time.Time
	for cursor.Before(limit) {
		slots = append(slots, cursor)
		cursor = cursor.Add(SlotInterval)
	}
	return slots
}
