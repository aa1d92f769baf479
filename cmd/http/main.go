package main

import (
	"context"
	"fmt"
	"log"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/delivery/http/controllers"
	"mediconnect-portal/internal/app/delivery/http/middlewares"
	"mediconnect-portal/internal/app/delivery/http/routers"
	"mediconnect-portal/internal/app/drivers/database"
	"mediconnect-portal/internal/app/drivers/logger"
	"mediconnect-portal/internal/app/drivers/messaging"
	"mediconnect-portal/internal/app/drivers/storage"
	"mediconnect-portal/internal/app/services/core/admin"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/auth"
	"mediconnect-portal/internal/app/services/core/directory"
	"mediconnect-portal/internal/app/services/core/doctors"
	"mediconnect-portal/internal/app/services/core/patients"
	"mediconnect-portal/internal/app/services/core/session"
	"mediconnect-portal/internal/app/services/core/slot"
	"mediconnect-portal/internal/app/services/hospitalapi"
	"mediconnect-portal/internal/app/services/shared/events"
	"mediconnect-portal/internal/app/services/shared/redis"
	sharedStorage "mediconnect-portal/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    listenAddress(internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	eventPublisher, err := newEventPublisher(bootstrap)
	if err != nil {
		return err
	}

	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}
	recordLinker := sharedStorage.NewRecordLinker(
		objectStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		time.Duration(cfg.App.MinioPreSignedUrlObjectExpiryTimeInHours)*time.Hour,
		log,
	)

	// Hospital API clients
	transport := hospitalapi.NewTransport(
		cfg.API.BaseUrl,
		time.Duration(cfg.API.RequestTimeoutInSeconds)*time.Second,
		cfg.API.MaxRequestsPerSecond,
		log,
	)
	authClient := hospitalapi.NewAuthClient(transport)
	scheduleClient := hospitalapi.NewScheduleClient(transport)
	slotClient := hospitalapi.NewSlotClient(transport)
	appointmentClient := hospitalapi.NewAppointmentClient(transport)
	patientClient := hospitalapi.NewPatientClient(transport)
	directoryClient := hospitalapi.NewDirectoryClient(transport)
	adminClient := hospitalapi.NewAdminClient(transport)

	// Usecases
	sessionService := session.NewSessionService(redisRepository, cfg, log)
	authUsecase := auth.NewAuthUsecase(authClient, sessionService, log)
	slotUsecase := slot.NewSlotUsecase(scheduleClient, slotClient, appointmentClient, eventPublisher, cfg, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClient, eventPublisher, recordLinker, log)
	demographics := patients.NewDemographicsCache(
		patientClient,
		redisRepository,
		time.Duration(cfg.App.DemographicsCacheTTLInMinutes)*time.Minute,
		log,
	)
	patientUsecase := patients.NewPatientUsecase(patientClient, demographics, recordLinker, log)
	doctorUsecase := doctors.NewDoctorUsecase(authClient, scheduleClient, appointmentClient, demographics, log)
	directoryUsecase := directory.NewDirectoryUsecase(directoryClient, log)
	adminUsecase := admin.NewAdminUsecase(adminClient, authClient, appointmentClient, directoryClient, log)

	// Delivery
	mw := middlewares.NewMiddlewares(log, authUsecase, cfg)
	routers.SetupRoutes(bootstrap.Router, cfg, mw, bootstrap.AccessLogger, &routers.Controllers{
		Auth:        controllers.NewAuthController(log, authUsecase),
		Schedule:    controllers.NewScheduleController(log, slotUsecase),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase),
		Patient:     controllers.NewPatientController(log, patientUsecase),
		Doctor:      controllers.NewDoctorController(log, doctorUsecase),
		Directory:   controllers.NewDirectoryController(log, directoryUsecase),
		Admin:       controllers.NewAdminController(log, adminUsecase),
	})
	return nil
}

func newEventPublisher(bootstrap *config.Bootstrap) (contracts.EventPublisher, error) {
	queue := bootstrap.InternalConfig.App.RabbitMQAppointmentEventsQueue
	if bootstrap.RabbitMQ == nil || queue == "" {
		return events.NewNoopPublisher(bootstrap.Logger), nil
	}
	publisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, queue)
	if err != nil {
		return nil, fmt.Errorf("appointment event publisher: %w", err)
	}
	return publisher, nil
}

func listenAddress(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
