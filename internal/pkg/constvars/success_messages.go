package constvars

const (
	ResponseSuccess              = "success"
	ResponseLoggedIn             = "logged in successfully"
	ResponseLoggedOut            = "logged out successfully"
	ResponseAppointmentBooked    = "Appointment booked successfully!"
	ResponseAppointmentApproved  = "Appointment approved successfully"
	ResponseAppointmentRejected  = "Appointment rejected successfully"
	ResponseAppointmentCancelled = "Appointment cancelled successfully"
	ResponseScheduleSaved        = "Schedule saved successfully!"
	ResponsePatientProfileSaved  = "Patient Created Successfully!"
	ResponseDoctorCreated        = "Doctor added successfully!"
	ResponseHospitalCreated      = "Hospital added successfully!"
	ResponseReceptionistCreated  = "Receptionist added successfully!"
	ResponseUnknown              = "unknown"
)
