package validator

import "testing"

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Type     string `validate:"omitempty,oneof=presential online"`
	Weekday  int    `validate:"gte=0,lte=6"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{
		Email:    "patient@example.com",
		Password: "supersecret",
		Type:     "online",
		Weekday:  3,
	}
	if err := cv.Validate(&req); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Type:     "telepathy",
		Weekday:  9,
	}

	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("Validate() error = nil, want validation errors")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", formatted["Email"])
	}
	if formatted["Password"] != "Password must be at least 8 characters" {
		t.Errorf("Password message = %q", formatted["Password"])
	}
	if formatted["Type"] != "Type must be one of: presential online" {
		t.Errorf("Type message = %q", formatted["Type"])
	}
	if formatted["Weekday"] != "Weekday must be less than or equal to 6" {
		t.Errorf("Weekday message = %q", formatted["Weekday"])
	}
}

func TestFormatRequiredError(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{})
	if err == nil {
		t.Fatal("Validate() error = nil, want validation errors")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email is required" {
		t.Errorf("Email message = %q", formatted["Email"])
	}
}
