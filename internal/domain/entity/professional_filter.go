package entity

// ProfessionalFilter is a domain-level filter for the public professional
// search. Used by the repository layer to avoid coupling with delivery DTOs.
// Each non-zero field contributes exactly one predicate with its own bound
// parameter.
type ProfessionalFilter struct {
	Name      string // Filter by professional name (ILIKE)
	Specialty string // Filter by specialty (ILIKE)
	City      string // Filter by city (ILIKE)
	MinPrice  string // Lower bound on consultation price, decimal string
	MaxPrice  string // Upper bound on consultation price, decimal string
	Page      int
	Limit     int
}

// Normalize clamps pagination to sane bounds.
func (f *ProfessionalFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// Offset returns the row offset for the current page.
func (f *ProfessionalFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
