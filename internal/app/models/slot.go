package models

import (
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/responses"
	"time"
)

// Slot is one server-computed slot as displayed to the patient. SlotID is the
// 1-based position in the server response.
type Slot struct {
	SlotID        int    `json:"slot_id"`
	Date          string `json:"date"`
	StartDateTime string `json:"start_datetime"`
	EndDateTime   string `json:"end_datetime"`
	Status        string `json:"status"`
	IsBooked      bool   `json:"is_booked"`
}

func NewSlotFromResponse(index int, s responses.Slot) Slot {
	return Slot{
		SlotID:        index + 1,
		Date:          s.Date,
		StartDateTime: s.StartDateTime,
		EndDateTime:   s.EndDateTime,
		Status:        s.Status,
		IsBooked:      s.Status != constvars.SlotStatusAvailable,
	}
}

// AvailableDate is a bookable calendar day in the lookahead window.
type AvailableDate struct {
	Date string `json:"date"`
	Day  string `json:"day"`
}

// BookedInterval is the server-confirmed booking window.
type BookedInterval struct {
	Start  time.Time
	End    time.Time
	Status string
}
