package main

import (
	"context"
	"fmt"
	"log"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/delivery/cli"
	"mediconnect-portal/internal/app/drivers/database"
	"mediconnect-portal/internal/app/drivers/logger"
	"mediconnect-portal/internal/app/drivers/messaging"
	"mediconnect-portal/internal/app/drivers/storage"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/auth"
	"mediconnect-portal/internal/app/services/core/session"
	"mediconnect-portal/internal/app/services/core/slot"
	"mediconnect-portal/internal/app/services/hospitalapi"
	"mediconnect-portal/internal/app/services/shared/events"
	"mediconnect-portal/internal/app/services/shared/redis"
	sharedStorage "mediconnect-portal/internal/app/services/shared/storage"
	"os"
	"os/signal"
	"syscall"
	"time"

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

	zapLogger := logger.NewCLILogger(driverConfig.Logger.Level)
	bootstrap := &config.Bootstrap{
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	app, err := buildApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to build the CLI", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cli.NewRootCommand(app).ExecuteContext(ctx)
	stop()

	closeDrivers(bootstrap, zapLogger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.UserMessage(err))
		os.Exit(1)
	}
}

// closeDrivers reports driver close failures as warnings; the command's own
// result decides the exit code.
func closeDrivers(bootstrap *config.Bootstrap, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*time.Duration(bootstrap.InternalConfig.App.ShutdownTimeoutInSeconds))
	defer cancel()

	err := bootstrap.Shutdown(ctx)
	if err != nil {
		logger.Warn("Error while closing drivers", zap.Error(err))
	}
}

func buildApp(bootstrap *config.Bootstrap) (*cli.App, error) {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	sessions, err := cli.NewSessionFile(cfg)
	if err != nil {
		return nil, err
	}

	var eventPublisher contracts.EventPublisher = events.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil && cfg.App.RabbitMQAppointmentEventsQueue != "" {
		eventPublisher, err = events.NewEventPublisher(bootstrap.RabbitMQ, log, cfg.App.RabbitMQAppointmentEventsQueue)
		if err != nil {
			return nil, err
		}
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

	requestTimeout := time.Duration(cfg.API.RequestTimeoutInSeconds) * time.Second
	transport := hospitalapi.NewTransport(cfg.API.BaseUrl, requestTimeout, cfg.API.MaxRequestsPerSecond, log)
	authClient := hospitalapi.NewAuthClient(transport)
	scheduleClient := hospitalapi.NewScheduleClient(transport)
	slotClient := hospitalapi.NewSlotClient(transport)
	appointmentClient := hospitalapi.NewAppointmentClient(transport)

	sessionService := session.NewSessionService(redis.NewRedisRepository(bootstrap.Redis), cfg, log)

	return &cli.App{
		Log:                log,
		Out:                os.Stdout,
		Sessions:           sessions,
		Timeout:            2 * requestTimeout,
		AuthUsecase:        auth.NewAuthUsecase(authClient, sessionService, log),
		SlotUsecase:        slot.NewSlotUsecase(scheduleClient, slotClient, appointmentClient, eventPublisher, cfg, log),
		AppointmentUsecase: appointments.NewAppointmentUsecase(appointmentClient, eventPublisher, recordLinker, log),
	}, nil
}
