package routers

import (
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RolePatient))

	router.Get("/profile", patientController.GetProfile)
	router.Post("/profile", patientController.SaveProfile)

	router.Get("/appointments/upcoming", appointmentController.UpcomingAppointments)
	router.Get("/appointments/past", appointmentController.PastAppointments)
	router.Delete("/appointments/{appointmentId}", appointmentController.CancelAppointment)
}
