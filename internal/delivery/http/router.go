package http

import (
	"net/http"

	"github.com/shivam77kk/healthcare-online/internal/delivery/http/handler"
	"github.com/shivam77kk/healthcare-online/internal/delivery/http/middleware"
	"github.com/shivam77kk/healthcare-online/pkg/jwt"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	messageHandler     *handler.MessageHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		messageHandler:     messageHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// User routes (public)
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/patient/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	user.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	user.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	user.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// User routes (admin session)
	userAdmin := api.PathPrefix("/user/admin").Subrouter()
	userAdmin.Use(r.authMiddleware.Authenticate(jwt.AdminCookie))
	userAdmin.Use(middleware.RequireAdmin)
	userAdmin.HandleFunc("/addnew", r.authHandler.AddNewAdmin).Methods(http.MethodPost)
	userAdmin.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	userAdmin.HandleFunc("/logout", r.authHandler.LogoutAdmin).Methods(http.MethodGet)

	// Doctor onboarding rides the admin session too
	doctorAdmin := api.PathPrefix("/user/doctor").Subrouter()
	doctorAdmin.Use(r.authMiddleware.Authenticate(jwt.AdminCookie))
	doctorAdmin.Use(middleware.RequireAdmin)
	doctorAdmin.HandleFunc("/addnew", r.authHandler.AddNewDoctor).Methods(http.MethodPost)

	// User routes (patient session)
	userPatient := api.PathPrefix("/user/patient").Subrouter()
	userPatient.Use(r.authMiddleware.Authenticate(jwt.PatientCookie))
	userPatient.Use(middleware.RequirePatient)
	userPatient.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	userPatient.HandleFunc("/logout", r.authHandler.LogoutPatient).Methods(http.MethodGet)

	// Appointment routes (patient session)
	appointmentPatient := api.PathPrefix("/appointment").Subrouter()
	appointmentPatient.Use(r.authMiddleware.Authenticate(jwt.PatientCookie))
	appointmentPatient.Use(middleware.RequirePatient)
	appointmentPatient.HandleFunc("/post", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	appointmentPatient.HandleFunc("/my", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)

	// Appointment routes (admin session)
	appointmentAdmin := api.PathPrefix("/appointment").Subrouter()
	appointmentAdmin.Use(r.authMiddleware.Authenticate(jwt.AdminCookie))
	appointmentAdmin.Use(middleware.RequireAdmin)
	appointmentAdmin.HandleFunc("/getall", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointmentAdmin.HandleFunc("/update/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointmentAdmin.HandleFunc("/delete/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Message routes
	api.HandleFunc("/message/send", r.messageHandler.SendMessage).Methods(http.MethodPost)

	messageAdmin := api.PathPrefix("/message").Subrouter()
	messageAdmin.Use(r.authMiddleware.Authenticate(jwt.AdminCookie))
	messageAdmin.Use(middleware.RequireAdmin)
	messageAdmin.HandleFunc("/getall", r.messageHandler.GetAllMessages).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
