package entity

import "testing"

func TestUserActive(t *testing.T) {
	active := true
	inactive := false

	tests := []struct {
		name   string
		flag   *bool
		expect bool
	}{
		{"nil flag counts as active", nil, true},
		{"explicitly active", &active, true},
		{"explicitly disabled", &inactive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{IsActive: tt.flag}
			if got := u.Active(); got != tt.expect {
				t.Errorf("Active() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestProfessionalBookable(t *testing.T) {
	active := true
	inactive := false

	tests := []struct {
		name     string
		verified bool
		userFlag *bool
		expect   bool
	}{
		{"verified and active", true, &active, true},
		{"unverified", false, &active, false},
		{"verified but disabled", true, &inactive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ProfessionalProfile{
				IsVerified: tt.verified,
				User:       User{IsActive: tt.userFlag},
			}
			if got := p.Bookable(); got != tt.expect {
				t.Errorf("Bookable() = %v, want %v", got, tt.expect)
			}
		})
	}
}
