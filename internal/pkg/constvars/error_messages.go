package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"url":           "must be a valid URL",
	"startswith":    "must start with %s",
	"datetime":      "must follow the %s format",
	"clock":         "must be a valid HH:MM time",
	"weekday":       "must be a weekday name such as Monday",
	"required_with": "is required when %s is present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"len":           true,
	"oneof":         true,
	"gt":            true,
	"gte":           true,
	"lt":            true,
	"lte":           true,
	"startswith":    true,
	"datetime":      true,
	"required_with": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPatientNotLoggedIn            = "patient not logged in"
	ErrClientSelectPurpose                 = "please select purpose"
	ErrClientSlotNotFound                  = "the selected slot is no longer listed for this date"
	ErrClientSlotAlreadyBooked             = "the selected slot is already booked"
	ErrClientBookingFailed                 = "booking failed"
	ErrClientUpdateAppointmentStatus       = "error updating appointment status"
	ErrClientCancelAppointment             = "failed to cancel appointment"
	ErrClientFetchSchedules                = "failed to fetch schedules"
	ErrClientFetchSlots                    = "failed to fetch slots"
	ErrClientFetchAppointments             = "failed to fetch appointments"
	ErrClientInvalidScheduleWindow         = "schedule start time must be before end time"
	ErrClientInvalidBreakWindow            = "every break must start before it ends and stay within working hours"
	ErrClientInvalidHospitalID             = "hospital ID must start with 'HSP'"
	ErrClientInvalidDate                   = "date must follow the YYYY-MM-DD format"
	ErrClientLoginFailed                   = "login failed"
	ErrClientSaveSchedule                  = "failed to save schedule"
	ErrClientFetchPatient                  = "failed to fetch patient data"
	ErrClientSavePatient                   = "failed to save patient profile"
	ErrClientCreateDoctor                  = "failed to add doctor"
	ErrClientCreateHospital                = "failed to add hospital"
	ErrClientCreateReceptionist            = "failed to add receptionist"
	ErrClientPatientNotFound               = "no patient data found"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevRateLimitWait            = "outbound rate limiter refused to wait for a token"

	// Hospital API messages
	ErrDevAPIUpstreamResponse = "hospital API responded to %s request with status %d: %s"
	ErrDevAPIDecodeResponse   = "failed to decode %s response from hospital API"

	// Usecase messages
	ErrDevPatientIDMissing       = "session does not carry a patient id"
	ErrDevPatientNotFound        = "hospital API has no demographics for %s"
	ErrDevUnknownPurpose         = "purpose %q has no configured duration"
	ErrDevSlotNotFound           = "slot starting at %s is not part of the current view"
	ErrDevSlotAlreadyBooked      = "slot starting at %s is already booked"
	ErrDevInvalidScheduleWindow  = "schedule window %s-%s is empty or inverted"
	ErrDevInvalidBreakWindow     = "break %s-%s falls outside the working window or is inverted"
	ErrDevInvalidHospitalID      = "hospital id %q does not carry the HSP prefix"
	ErrDevDuplicateStatusRequest = "status request for appointment %s is already in flight"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthPermissionDenied      = "permission denied for role %q"

	// Minio messages
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
