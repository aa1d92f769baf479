package constvars

import "time"

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXSessionID    = "X-Session-ID"
	HeaderBearerPrefix  = "Bearer "
)

const (
	CookieSessionID = "session_id"
)

const (
	ControllerTimeout      = 30 * time.Second
	MaxMultipartFormMemory = 32 << 20
	FormFieldMedicalRecord = "medical_records"
)

const (
	URLParamDoctorID      = "doctorId"
	URLParamDate          = "date"
	URLParamAppointmentID = "appointmentId"
	URLParamEmail         = "email"
)
