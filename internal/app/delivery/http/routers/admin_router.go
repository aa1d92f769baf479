package routers

import (
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Post("/doctors", adminController.CreateDoctor)
	router.Post("/hospitals", adminController.CreateHospital)
	router.Post("/receptionists", adminController.CreateReceptionist)
	router.Get("/analytics", adminController.Analytics)
}
