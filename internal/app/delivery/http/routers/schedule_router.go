package routers

import (
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRoles(constvars.RolePatient))
		r.Get("/{doctorId}/dates", scheduleController.GetAvailableDates)
		r.Get("/{doctorId}/dates/{date}/slots", scheduleController.GetSlots)
		r.Post("/{doctorId}/dates/{date}/book", scheduleController.BookSlot)
	})
}
