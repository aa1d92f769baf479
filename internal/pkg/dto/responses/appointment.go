package responses

type Slot struct {
	Date          string `json:"date"`
	StartDateTime string `json:"start_datetime"`
	EndDateTime   string `json:"end_datetime"`
	Status        string `json:"status"`
}

type SlotsEnvelope struct {
	Slots []Slot `json:"slots"`
}

type BookingConfirmation struct {
	AppointmentID string `json:"appointment_id,omitempty"`
	Slot          Slot   `json:"slot"`
	Status        string `json:"status"`
}

type StatusUpdate struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type DoctorExists struct {
	Exists bool `json:"exists"`
}
