package constvars

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

const (
	AppointmentStatusPending  = "pending"
	AppointmentStatusApproved = "approved"
	AppointmentStatusRejected = "rejected"
)

const (
	AppointmentActionApprove = "approve"
	AppointmentActionReject  = "reject"
)

const (
	PurposeConsultation   = "Consultation"
	PurposeFollowUp       = "Follow-up"
	PurposeMinorProcedure = "Minor Procedure"
	PurposeMajorProcedure = "Major Procedure"
)

const (
	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventAppointmentCancelled     = "appointment.cancelled"
)

const (
	DateLayout          = "2006-01-02"
	ClockLayout         = "15:04"
	LocalDateTimeLayout = "2006-01-02T15:04:05"
	DefaultLookaheadDay = 7
)
