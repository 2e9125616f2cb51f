package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "unique violation on matching constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "uniq_appointment_slot"},
			constraint: "uniq_appointment_slot",
			want:       true,
		},
		{
			name:       "constraint fragment match",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"},
			constraint: "email",
			want:       true,
		},
		{
			name:       "case insensitive constraint match",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "IDX_USERS_EMAIL"},
			constraint: "email",
			want:       true,
		},
		{
			name:       "wrapped unique violation",
			err:        fmt.Errorf("create appointment: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uniq_appointment_slot"}),
			constraint: "uniq_appointment_slot",
			want:       true,
		},
		{
			name:       "unique violation on different constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"},
			constraint: "license_number",
			want:       false,
		},
		{
			name:       "foreign key violation is not a duplicate",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "uniq_appointment_slot"},
			constraint: "uniq_appointment_slot",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("connection refused"),
			constraint: "uniq_appointment_slot",
			want:       false,
		},
		{
			name:       "nil error",
			err:        nil,
			constraint: "uniq_appointment_slot",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isDuplicateKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "foreign key violation on matching constraint",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"},
			constraint: "patient",
			want:       true,
		},
		{
			name:       "foreign key violation on different constraint",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "appointments_professional_id_fkey"},
			constraint: "patient",
			want:       false,
		},
		{
			name:       "unique violation is not a foreign key error",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "appointments_patient_id_fkey"},
			constraint: "patient",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("connection refused"),
			constraint: "patient",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isForeignKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isForeignKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}
