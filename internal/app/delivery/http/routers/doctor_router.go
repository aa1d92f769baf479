package routers

import (
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRoles(constvars.RoleDoctor))
		r.Get("/me/dashboard", doctorController.Dashboard)
		r.Post("/me/schedule", doctorController.SaveSchedule)
		r.Get("/me/patients/{email}", doctorController.PatientDemographics)
	})
}
