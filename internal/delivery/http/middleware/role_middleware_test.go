package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"saude-connect-api/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		roleID     int
		wantStatus int
	}{
		{"admin allowed", RequireAdmin, entity.RoleIDAdmin, http.StatusOK},
		{"patient rejected on admin route", RequireAdmin, entity.RoleIDPatient, http.StatusForbidden},
		{"professional allowed", RequireProfessional, entity.RoleIDProfessional, http.StatusOK},
		{"admin rejected on professional route", RequireProfessional, entity.RoleIDAdmin, http.StatusForbidden},
		{"patient allowed", RequirePatient, entity.RoleIDPatient, http.StatusOK},
		{"professional rejected on patient route", RequirePatient, entity.RoleIDProfessional, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(rec, requestWithRole(tt.roleID))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != (tt.wantStatus == http.StatusOK) {
				t.Errorf("next handler called = %v", called)
			}
		})
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleMultipleAllowed(t *testing.T) {
	mw := RequireRole(entity.RoleIDAdmin, entity.RoleIDProfessional)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, requestWithRole(entity.RoleIDProfessional))
	if rec.Code != http.StatusOK {
		t.Errorf("professional status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	mw(next).ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))
	if rec.Code != http.StatusForbidden {
		t.Errorf("patient status = %d, want 403", rec.Code)
	}
}
