package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medilab/lab-api/internal/delivery/http/handler"
	"github.com/medilab/lab-api/internal/delivery/http/middleware"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	reportHandler    *handler.ReportHandler
	secretaryHandler *handler.SecretaryHandler
	dashboardHandler *handler.DashboardHandler
	predictHandler   *handler.PredictHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	reportHandler *handler.ReportHandler,
	secretaryHandler *handler.SecretaryHandler,
	dashboardHandler *handler.DashboardHandler,
	predictHandler *handler.PredictHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		reportHandler:    reportHandler,
		secretaryHandler: secretaryHandler,
		dashboardHandler: dashboardHandler,
		predictHandler:   predictHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Authenticated routes (any role)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/current-user", r.authHandler.CurrentUser).Methods(http.MethodGet)

	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	protected.HandleFunc("/patients/{id:[0-9]+}/payment", r.patientHandler.ApplyPayment).Methods(http.MethodPost)

	protected.HandleFunc("/reports/patient/{id:[0-9]+}", r.reportHandler.GetReportByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/secretaries", r.secretaryHandler.GetAllSecretaries).Methods(http.MethodGet)
	protected.HandleFunc("/secretaries/{id:[0-9]+}", r.secretaryHandler.GetSecretary).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)

	// Doctor-only routes
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/reports", r.reportHandler.GetAllReports).Methods(http.MethodGet)
	doctor.HandleFunc("/reports", r.reportHandler.CreateReport).Methods(http.MethodPost)
	doctor.HandleFunc("/reports/pending", r.reportHandler.GetPendingPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/predict", r.predictHandler.Predict).Methods(http.MethodPost)
	doctor.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	doctor.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
