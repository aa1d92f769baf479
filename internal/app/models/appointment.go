package models

import "time"

type MedicalRecord struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type Appointment struct {
	ID             string          `json:"_id,omitempty"`
	AppointmentID  string          `json:"appointment_id"`
	PatientEmail   string          `json:"patient_email,omitempty"`
	PatientID      string          `json:"patient_id,omitempty"`
	DoctorID       string          `json:"doctor_id,omitempty"`
	DoctorName     string          `json:"doctor_name,omitempty"`
	Specialty      string          `json:"specialty,omitempty"`
	HospitalName   string          `json:"hospital_name,omitempty"`
	Date           string          `json:"date,omitempty"`
	StartDateTime  string          `json:"start_datetime"`
	EndDateTime    string          `json:"end_datetime"`
	Status         string          `json:"status"`
	Purpose        string          `json:"purpose,omitempty"`
	MedicalRecords []MedicalRecord `json:"medical_records,omitempty"`
}

// Identifier returns appointment_id, falling back to the storage id some
// endpoints return instead.
func (a Appointment) Identifier() string {
	if a.AppointmentID != "" {
		return a.AppointmentID
	}
	return a.ID
}

func (a Appointment) HasMedicalRecords() bool {
	return len(a.MedicalRecords) > 0
}

type StatusUpdate struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

// AppointmentEvent is published after a successful appointment mutation.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	DoctorID      string    `json:"doctor_id,omitempty"`
	PatientID     string    `json:"patient_id,omitempty"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
