package slot

import (
	"mediconnect-portal/internal/app/models"
	"time"
)

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

func (c clock) minutes() int {
	return c.H*60 + c.M
}

// interval is a half-open [Start, End) span.
type interval struct {
	Start time.Time
	End   time.Time
}

// overlaps reports whether two half-open intervals share any instant.
func (a interval) overlaps(b interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// DoctorScheduleView is what a patient sees before picking a date.
type DoctorScheduleView struct {
	DoctorID       string                 `json:"doctor_id"`
	OffDays        []string               `json:"off_days"`
	AvailableDates []models.AvailableDate `json:"available_dates"`
	Purposes       []PurposeOption        `json:"purposes"`
}

// ScheduleView holds the slot list of one doctor on one date. It only changes
// through ApplyBooking, after the server has confirmed a booking.
type ScheduleView struct {
	DoctorID string        `json:"doctor_id"`
	Date     string        `json:"date"`
	Slots    []models.Slot `json:"slots"`

	location *time.Location
}

// BookingResult is the reconciled view returned after a confirmed booking.
type BookingResult struct {
	AppointmentID string        `json:"appointment_id,omitempty"`
	Status        string        `json:"status"`
	StartDateTime string        `json:"start_datetime"`
	EndDateTime   string        `json:"end_datetime"`
	Purpose       string        `json:"purpose"`
	Slots         []models.Slot `json:"slots"`
}

type PurposeOption struct {
	Purpose         string `json:"purpose"`
	DurationMinutes int    `json:"duration_minutes"`
}
