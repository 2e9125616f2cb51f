package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 201, "created", map[string]string{"id": "abc"})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Message != "created" {
		t.Errorf("message = %q, want %q", body.Message, "created")
	}
}

func TestConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "Time slot is already booked")

	if rec.Code != 409 {
		t.Errorf("status = %d, want 409", rec.Code)
	}

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success {
		t.Error("success = true, want false")
	}
	if body.Message != "Time slot is already booked" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestErrorDefaultMessages(t *testing.T) {
	tests := []struct {
		name    string
		call    func(rec *httptest.ResponseRecorder)
		code    int
		message string
	}{
		{"bad request", func(r *httptest.ResponseRecorder) { BadRequest(r, "") }, 400, "Bad request"},
		{"unauthorized", func(r *httptest.ResponseRecorder) { Unauthorized(r, "") }, 401, "Unauthorized"},
		{"forbidden", func(r *httptest.ResponseRecorder) { Forbidden(r, "") }, 403, "Forbidden"},
		{"not found", func(r *httptest.ResponseRecorder) { NotFound(r, "") }, 404, "Resource not found"},
		{"internal", func(r *httptest.ResponseRecorder) { InternalServerError(r, "") }, 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(rec)

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			var body Response
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Message != tt.message {
				t.Errorf("message = %q, want %q", body.Message, tt.message)
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int
	}{
		{"exact division", 1, 10, 30, 3},
		{"rounds up", 1, 10, 31, 4},
		{"empty result", 1, 10, 0, 0},
		{"single partial page", 1, 20, 5, 1},
		{"zero limit", 1, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantTotalPages)
			}
			if meta.Page != tt.page || meta.Limit != tt.limit || meta.Total != tt.total {
				t.Errorf("meta = %+v", meta)
			}
		})
	}
}
