package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// AppointmentType distinguishes in-person from remote consultations
type AppointmentType string

const (
	AppointmentTypePresential AppointmentType = "presential"
	AppointmentTypeOnline     AppointmentType = "online"
)

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CancellationNotice is the minimum lead time before the appointment
// at which a patient may still cancel.
const CancellationNotice = 24 * time.Hour

// Appointment represents a consultation booked by a patient with a
// professional. Rows are never hard-deleted, only status-transitioned.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"professional_id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Type            AppointmentType   `gorm:"type:varchar(20);not null;default:'presential'" json:"type"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Diagnosis       string            `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescription    string            `gorm:"type:text" json:"prescription,omitempty"`
	FollowUpDate    *time.Time        `gorm:"type:date" json:"follow_up_date,omitempty"`
	Price           decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"price"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional ProfessionalProfile `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Patient      PatientProfile      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OccupyingStatuses are the statuses that block a slot for other bookings.
// Cancelled and no-show appointments free the slot.
func OccupyingStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
	}
}

// Occupies reports whether this appointment blocks its slot.
func (a *Appointment) Occupies() bool {
	switch a.Status {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted:
		return true
	}
	return false
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsTerminal reports whether the status admits no further transition.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo validates a status transition against the lifecycle:
// scheduled -> confirmed -> completed | cancelled | no_show, where
// confirmed is optional and the three right-hand states are terminal.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusScheduled:
		switch target {
		case AppointmentStatusConfirmed, AppointmentStatusCompleted,
			AppointmentStatusCancelled, AppointmentStatusNoShow:
			return true
		}
	case AppointmentStatusConfirmed:
		switch target {
		case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
			return true
		}
	}
	return false
}

// CancellableAt reports whether the notice window still permits cancellation
// at the given instant. The boundary is inclusive: exactly CancellationNotice
// before the appointment is still allowed, one second later is not.
func (a *Appointment) CancellableAt(now time.Time) bool {
	return !now.After(a.AppointmentDate.Add(-CancellationNotice))
}

// Editable reports whether patient-side mutation (edit, cancel) is still
// accepted. Completed appointments are immutable.
func (a *Appointment) Editable() bool {
	return a.Status != AppointmentStatusCompleted
}
