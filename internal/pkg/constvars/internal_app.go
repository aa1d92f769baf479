package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Roles as returned by the hospital API login endpoint.
const (
	RolePatient      = "Patient"
	RoleDoctor       = "Doctor"
	RoleReceptionist = "Receptionist"
	RoleAdmin        = "Admin"
)

// Dashboards each role lands on after login.
var RoleDashboards = map[string]string{
	RolePatient:      "/patient-dashboard",
	RoleDoctor:       "/doctor-dashboard",
	RoleReceptionist: "/receptionist-dashboard",
	RoleAdmin:        "/admin",
}

const (
	DefaultDashboard = "/"
)

const (
	DoctorIDPrefix   = "DOC"
	HospitalIDPrefix = "HSP"
)

const (
	ResourceAuth         = "auth"
	ResourceSchedules    = "schedules"
	ResourceSlots        = "slots"
	ResourceAppointments = "appointments"
	ResourcePatients     = "patients"
	ResourceDoctors      = "doctors"
	ResourceHospitals    = "hospitals"
	ResourceUsers        = "users"
	ResourceAdmin        = "admin"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPageSize        = 10
)

const (
	RedisKeySessionPrefix      = "session:"
	RedisKeyDemographicsPrefix = "demographics:"
)

const (
	CLISessionDir      = ".mediconnect"
	CLISessionFileName = "session"
)
