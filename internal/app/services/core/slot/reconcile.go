package slot

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/utils"
	"time"
)

// ReconcileSlots marks every slot overlapping the booked interval with the
// booked status. Other slots are copied as they are and the input is not modified.
// Slot datetimes without an offset are read in the booked interval's location.
func ReconcileSlots(slots []models.Slot, booked models.BookedInterval) []models.Slot {
	loc := booked.Start.Location()
	target := interval{Start: booked.Start, End: booked.End}

	reconciled := make([]models.Slot, len(slots))
	for i, s := range slots {
		reconciled[i] = s

		span, ok := slotInterval(s, loc)
		if !ok || !span.overlaps(target) {
			continue
		}
		reconciled[i].Status = booked.Status
		reconciled[i].IsBooked = true
	}
	return reconciled
}

// MapSlots numbers server slots from 1 and derives IsBooked from the status.
func MapSlots(apiSlots []responses.Slot) []models.Slot {
	slots := make([]models.Slot, len(apiSlots))
	for i, s := range apiSlots {
		slots[i] = models.NewSlotFromResponse(i, s)
	}
	return slots
}

// FilterSlotsByDate keeps the slots listed under date.
func FilterSlotsByDate(slots []models.Slot, date string) []models.Slot {
	filtered := make([]models.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Date == date {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func slotInterval(s models.Slot, loc *time.Location) (interval, bool) {
	start, err := utils.ParseAPIDateTime(s.StartDateTime, loc)
	if err != nil {
		return interval{}, false
	}
	end, err := utils.ParseAPIDateTime(s.EndDateTime, loc)
	if err != nil {
		return interval{}, false
	}
	return interval{Start: start, End: end}, true
}
