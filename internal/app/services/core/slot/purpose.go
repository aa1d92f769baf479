package slot

import (
	"fmt"
	"mediconnect-portal/internal/pkg/constvars"
	"time"
)

var purposeOrder = []string{
	constvars.PurposeConsultation,
	constvars.PurposeFollowUp,
	constvars.PurposeMinorProcedure,
	constvars.PurposeMajorProcedure,
}

var purposeDurations = map[string]time.Duration{
	constvars.PurposeConsultation:   15 * time.Minute,
	constvars.PurposeFollowUp:       30 * time.Minute,
	constvars.PurposeMinorProcedure: 45 * time.Minute,
	constvars.PurposeMajorProcedure: 60 * time.Minute,
}

func PurposeDuration(purpose string) (time.Duration, error) {
	duration, ok := purposeDurations[purpose]
	if !ok {
		return 0, fmt.Errorf("unknown purpose %q", purpose)
	}
	return duration, nil
}

// BookingWindow ends the booking one purpose duration after the slot start,
// whatever the slot grid granularity is.
func BookingWindow(slotStart time.Time, purpose string) (time.Time, time.Time, error) {
	duration, err := PurposeDuration(purpose)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return slotStart, slotStart.Add(duration), nil
}

func Purposes() []PurposeOption {
	options := make([]PurposeOption, 0, len(purposeOrder))
	for _, purpose := range purposeOrder {
		options = append(options, PurposeOption{
			Purpose:         purpose,
			DurationMinutes: int(purposeDurations[purpose] / time.Minute),
		})
	}
	return options
}
