package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAvailabilityKeyUsesUTCDay(t *testing.T) {
	professionalID := uuid.MustParse("6f1d3b1e-9c41-4a64-8a2f-3d6a1b5c9e07")
	saoPaulo := time.FixedZone("-03", -3*60*60)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "query date at utc midnight",
			date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want: "availability:6f1d3b1e-9c41-4a64-8a2f-3d6a1b5c9e07:2026-03-10",
		},
		{
			name: "late evening local time crosses into next utc day",
			date: time.Date(2026, 3, 9, 23, 30, 0, 0, saoPaulo),
			want: "availability:6f1d3b1e-9c41-4a64-8a2f-3d6a1b5c9e07:2026-03-10",
		},
		{
			name: "afternoon local time stays on same utc day",
			date: time.Date(2026, 3, 10, 14, 0, 0, 0, saoPaulo),
			want: "availability:6f1d3b1e-9c41-4a64-8a2f-3d6a1b5c9e07:2026-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := availabilityKey(professionalID, tt.date); got != tt.want {
				t.Errorf("availabilityKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAvailabilityKeyBookingAndQuerySameEntry(t *testing.T) {
	professionalID := uuid.New()

	// An appointment parsed from RFC 3339 keeps its offset; the matching
	// availability query arrives as a bare date parsed at UTC midnight.
	booked, err := time.Parse(time.RFC3339, "2026-03-10T02:00:00-03:00")
	if err != nil {
		t.Fatalf("failed to parse timestamp: %v", err)
	}
	queried, err := time.Parse("2006-01-02", "2026-03-10")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}

	if availabilityKey(professionalID, booked) != availabilityKey(professionalID, queried) {
		t.Errorf("booking key %q does not match query key %q",
			availabilityKey(professionalID, booked), availabilityKey(professionalID, queried))
	}
}
