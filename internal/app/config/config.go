package config

import (
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", ""),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medical-records"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:                           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:                           utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:                utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			LookaheadDays:                            utils.GetEnvInt("APP_LOOKAHEAD_DAYS", constvars.DefaultLookaheadDay),
			DemographicsCacheTTLInMinutes:            utils.GetEnvInt("APP_DEMOGRAPHICS_CACHE_TTL_IN_MINUTES", 10),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
			RabbitMQAppointmentEventsQueue:           utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_EVENTS_QUEUE", ""),
		},
		API: API{
			BaseUrl:                 utils.GetEnvString("API_BASE_URL", "http://localhost:8000"),
			RequestTimeoutInSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond:    utils.GetEnvInt("API_MAX_REQUESTS_PER_SECOND", 0),
		},
		Session: Session{
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			CLISessionFile:                 utils.GetEnvString("CLI_SESSION_FILE", ""),
		},
	}
}
