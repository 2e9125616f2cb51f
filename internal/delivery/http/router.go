package http

import (
	"net/http"

	"saude-connect-api/internal/delivery/http/handler"
	"saude-connect-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	professionalHandler *handler.ProfessionalHandler
	appointmentHandler  *handler.AppointmentHandler
	consultationHandler *handler.ConsultationHandler
	scheduleHandler     *handler.ScheduleHandler
	adminHandler        *handler.AdminHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	professionalHandler *handler.ProfessionalHandler,
	appointmentHandler *handler.AppointmentHandler,
	consultationHandler *handler.ConsultationHandler,
	scheduleHandler *handler.ScheduleHandler,
	adminHandler *handler.AdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		consultationHandler: consultationHandler,
		scheduleHandler:     scheduleHandler,
		adminHandler:        adminHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/professional", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Agenda and schedule self-service (protected - professional only).
	// Registered before the public directory so "me" never binds as {id}.
	professional := api.PathPrefix("/professionals/me").Subrouter()
	professional.Use(r.authMiddleware.Authenticate)
	professional.Use(middleware.RequireProfessional)
	professional.HandleFunc("/appointments", r.consultationHandler.GetAgenda).Methods(http.MethodGet)
	professional.HandleFunc("/schedule", r.scheduleHandler.GetMySchedule).Methods(http.MethodGet)
	professional.HandleFunc("/schedule", r.scheduleHandler.ReplaceMySchedule).Methods(http.MethodPut)

	// Professional directory (public): search, profile, availability
	api.HandleFunc("/professionals", r.professionalHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}", r.professionalHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}/availability", r.professionalHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}/schedule", r.scheduleHandler.GetByProfessional).Methods(http.MethodGet)

	// Appointment routes (protected - patient only)
	patient := api.PathPrefix("/appointments").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	patient.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	patient.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	patient.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	patient.HandleFunc("/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Clinical transitions (protected - professional only)
	clinical := api.PathPrefix("/appointments").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireProfessional)
	clinical.HandleFunc("/{id}/confirm", r.consultationHandler.Confirm).Methods(http.MethodPut)
	clinical.HandleFunc("/{id}/complete", r.consultationHandler.Complete).Methods(http.MethodPut)
	clinical.HandleFunc("/{id}/no-show", r.consultationHandler.MarkNoShow).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/status", r.adminHandler.SetUserStatus).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{id}/verify", r.adminHandler.VerifyProfessional).Methods(http.MethodPut)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
