package requests

// BookSlot is what the portal accepts from the patient: a picked slot start and a purpose.
type BookSlot struct {
	StartDateTime string `json:"start_datetime" validate:"required"`
	Purpose       string `json:"purpose" validate:"required,oneof='Consultation' 'Follow-up' 'Minor Procedure' 'Major Procedure'"`
}

// BookAppointment is the body sent to the hospital API booking endpoint.
type BookAppointment struct {
	PatientID     string `json:"patient_id"`
	StartDateTime string `json:"start_datetime"`
	EndDateTime   string `json:"end_datetime"`
	Purpose       string `json:"purpose"`
}

type StatusAction struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}
