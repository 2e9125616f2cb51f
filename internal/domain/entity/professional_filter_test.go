package entity

import "testing"

func TestProfessionalFilterNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
	}{
		{"zero values get defaults", 0, 0, 1, 10},
		{"negative page", -5, 20, 1, 20},
		{"limit above cap", 2, 500, 2, 100},
		{"valid values unchanged", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ProfessionalFilter{Page: tt.page, Limit: tt.limit}
			f.Normalize()
			if f.Page != tt.wantPage || f.Limit != tt.wantLimit {
				t.Errorf("Normalize() = page %d limit %d, want page %d limit %d",
					f.Page, f.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestProfessionalFilterOffset(t *testing.T) {
	f := &ProfessionalFilter{Page: 3, Limit: 10}
	if got := f.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}

	f = &ProfessionalFilter{Page: 1, Limit: 50}
	if got := f.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}
