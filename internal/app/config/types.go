package config

type (
	InternalConfig struct {
		App     App
		API     API
		Session Session
	}

	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                                      string
		Port                                     string
		Version                                  string
		Timezone                                 string
		EndpointPrefix                           string
		AllowedOrigins                           string
		MaxRequests                              int
		ShutdownTimeoutInSeconds                 int
		MaxTimeRequestsPerSeconds                int
		LookaheadDays                            int
		DemographicsCacheTTLInMinutes            int
		MinioPreSignedUrlObjectExpiryTimeInHours int
		RabbitMQAppointmentEventsQueue           string
	}

	// API describes the remote hospital REST API every view is derived from.
	API struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    int
	}

	Session struct {
		LoginSessionExpiredTimeInHours int
		CLISessionFile                 string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)
