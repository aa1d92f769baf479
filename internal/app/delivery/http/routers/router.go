package routers

import (
	"fmt"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Schedule    *controllers.ScheduleController
	Appointment *controllers.AppointmentController
	Patient     *controllers.PatientController
	Doctor      *controllers.DoctorController
	Directory   *controllers.DirectoryController
	Admin       *controllers.AdminController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLogger *logrus.Logger,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXSessionID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(accessLogger))
	}
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, ctrls.Doctor)
				attachScheduleRoutes(r, middlewares, ctrls.Schedule)
			})

			r.Route("/patients/me", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, ctrls.Patient, ctrls.Appointment)
			})

			r.Route("/receptionists/me", func(r chi.Router) {
				attachReceptionistRoutes(r, middlewares, ctrls.Appointment)
			})

			r.Route("/directory", func(r chi.Router) {
				attachDirectoryRoutes(r, middlewares, ctrls.Directory)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, ctrls.Admin)
			})
		})
	})
}

func allowedOrigins(raw string) []string {
	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
