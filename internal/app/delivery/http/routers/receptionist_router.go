package routers

import (
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReceptionistRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleReceptionist))

	router.Get("/appointments", appointmentController.ReceptionistBoard)
	router.Post("/appointments/{appointmentId}/status", appointmentController.UpdateStatus)
}
