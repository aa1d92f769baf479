package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingRoleKey           = "role"
	LoggingEmailKey          = "email"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingActionKey         = "action"
	LoggingStatusKey         = "status"
	LoggingDateKey           = "date"
	LoggingPurposeKey        = "purpose"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRedisKey          = "redis_key"
	LoggingQueueKey          = "queue"
	LoggingEventTypeKey      = "event_type"
	LoggingErrorLocationKey  = "location"
)
