package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfessionalProfile represents professional-specific profile data
type ProfessionalProfile struct {
	UserID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty         string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Biography         string          `gorm:"type:text" json:"biography,omitempty"`
	City              string          `gorm:"type:varchar(100);index" json:"city,omitempty"`
	ConsultationPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"consultation_price"`
	IsVerified        bool            `gorm:"not null;default:false;index" json:"is_verified"`

	// Relationships
	User      User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules []WeeklySchedule `gorm:"foreignKey:ProfessionalID" json:"schedules,omitempty"`
}

func (ProfessionalProfile) TableName() string {
	return "professional_profiles"
}

// Bookable reports whether patients may book this professional: the account
// must be active and the profile verified by an administrator.
func (p *ProfessionalProfile) Bookable() bool {
	return p.IsVerified && p.User.Active()
}
