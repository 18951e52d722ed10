package http

import (
	"net/http"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/http/handler"
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	appointmentHandler    *handler.AppointmentHandler
	patientHistoryHandler *handler.PatientHistoryHandler
	reportHandler         *handler.ReportHandler
	auditLogHandler       *handler.AuditLogHandler
	diagnosisHandler      *handler.DiagnosisHandler
	wellnessHandler       *handler.WellnessHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHistoryHandler *handler.PatientHistoryHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	wellnessHandler *handler.WellnessHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		userHandler:           userHandler,
		appointmentHandler:    appointmentHandler,
		patientHistoryHandler: patientHistoryHandler,
		reportHandler:         reportHandler,
		auditLogHandler:       auditLogHandler,
		diagnosisHandler:      diagnosisHandler,
		wellnessHandler:       wellnessHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User routes (protected - own records)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/appointments", r.appointmentHandler.Schedule).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.ListOwn).Methods(http.MethodGet)
	protected.HandleFunc("/patient-history", r.patientHistoryHandler.AddRecord).Methods(http.MethodPost)
	protected.HandleFunc("/patient-history", r.patientHistoryHandler.ListOwn).Methods(http.MethodGet)
	protected.HandleFunc("/diagnosis/analyze", r.diagnosisHandler.Analyze).Methods(http.MethodPost)
	protected.HandleFunc("/wellness/bmi", r.wellnessHandler.BMI).Methods(http.MethodPost)
	protected.HandleFunc("/wellness/calories", r.wellnessHandler.Calories).Methods(http.MethodPost)
	protected.HandleFunc("/wellness/water", r.wellnessHandler.WaterIntake).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", r.appointmentHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/patient-history", r.patientHistoryHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/reports/summary", r.reportHandler.Summary).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListRecent).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
