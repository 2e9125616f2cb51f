package entity

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   AppointmentStatus
		to     AppointmentStatus
		expect bool
	}{
		{"scheduled to confirmed", AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to no_show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to no_show", AppointmentStatusConfirmed, AppointmentStatusNoShow, true},
		{"confirmed back to scheduled", AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{"completed to cancelled", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled to scheduled", AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{"cancelled to confirmed", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"no_show to completed", AppointmentStatusNoShow, AppointmentStatusCompleted, false},
		{"scheduled to itself", AppointmentStatusScheduled, AppointmentStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			if got := a.CanTransitionTo(tt.to); got != tt.expect {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []AppointmentStatus{
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
	for _, status := range terminal {
		a := &Appointment{Status: status}
		if !a.IsTerminal() {
			t.Errorf("IsTerminal() = false for %s, want true", status)
		}
	}

	open := []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusConfirmed}
	for _, status := range open {
		a := &Appointment{Status: status}
		if a.IsTerminal() {
			t.Errorf("IsTerminal() = true for %s, want false", status)
		}
	}
}

func TestOccupies(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		expect bool
	}{
		{AppointmentStatusScheduled, true},
		{AppointmentStatusConfirmed, true},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, false},
		{AppointmentStatusNoShow, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		if got := a.Occupies(); got != tt.expect {
			t.Errorf("Occupies() = %v for %s, want %v", got, tt.status, tt.expect)
		}
	}
}

func TestCancellableAt(t *testing.T) {
	appointmentDate := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	a := &Appointment{AppointmentDate: appointmentDate}

	tests := []struct {
		name   string
		now    time.Time
		expect bool
	}{
		{"two days before", appointmentDate.Add(-48 * time.Hour), true},
		{"exactly 24 hours before", appointmentDate.Add(-24 * time.Hour), true},
		{"one second inside the window", appointmentDate.Add(-24*time.Hour + time.Second), false},
		{"one hour before", appointmentDate.Add(-time.Hour), false},
		{"after the appointment", appointmentDate.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.CancellableAt(tt.now); got != tt.expect {
				t.Errorf("CancellableAt(%s) = %v, want %v", tt.now, got, tt.expect)
			}
		})
	}
}

func TestEditable(t *testing.T) {
	completed := &Appointment{Status: AppointmentStatusCompleted}
	if completed.Editable() {
		t.Error("Editable() = true for completed appointment, want false")
	}

	for _, status := range []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	} {
		a := &Appointment{Status: status}
		if !a.Editable() {
			t.Errorf("Editable() = false for %s, want true", status)
		}
	}
}
