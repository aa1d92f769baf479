package routers

import (
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDirectoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, directoryController *controllers.DirectoryController) {
	router.Use(middlewares.Authenticate)

	router.Get("/doctors", directoryController.ListDoctors)
	router.Get("/hospitals", directoryController.ListHospitals)
}
