package slot

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterSlots() []models.Slot {
	return []models.Slot{
		{SlotID: 1, Date: "2025-01-04", StartDateTime: "2025-01-04T09:00:00", EndDateTime: "2025-01-04T09:15:00", Status: "available"},
		{SlotID: 2, Date: "2025-01-04", StartDateTime: "2025-01-04T09:15:00", EndDateTime: "2025-01-04T09:30:00", Status: "available"},
		{SlotID: 3, Date: "2025-01-04", StartDateTime: "2025-01-04T09:30:00", EndDateTime: "2025-01-04T09:45:00", Status: "available"},
		{SlotID: 4, Date: "2025-01-04", StartDateTime: "2025-01-04T09:45:00", EndDateTime: "2025-01-04T10:00:00", Status: "booked", IsBooked: true},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 4, hour, minute, 0, 0, time.UTC)
}

func TestReconcileSlots(t *testing.T) {
	t.Run("Thirty Minute Booking Covers Two Quarter Slots", func(t *testing.T) {
		slots := quarterSlots()
		reconciled := ReconcileSlots(slots, models.BookedInterval{Start: at(9, 0), End: at(9, 30), Status: "pending"})

		require.Len(t, reconciled, len(slots))
		assert.True(t, reconciled[0].IsBooked)
		assert.Equal(t, "pending", reconciled[0].Status)
		assert.True(t, reconciled[1].IsBooked)
		assert.Equal(t, "pending", reconciled[1].Status)
		assert.Equal(t, slots[2], reconciled[2], "slot starting at the booking end is untouched")
		assert.Equal(t, slots[3], reconciled[3])
	})

	t.Run("Input Is Not Mutated", func(t *testing.T) {
		slots := quarterSlots()
		before := quarterSlots()
		_ = ReconcileSlots(slots, models.BookedInterval{Start: at(9, 0), End: at(10, 0), Status: "booked"})

		assert.Equal(t, before, slots)
	})

	t.Run("Booking Ending At Slot Start Does Not Mark It", func(t *testing.T) {
		reconciled := ReconcileSlots(quarterSlots(), models.BookedInterval{Start: at(8, 45), End: at(9, 0), Status: "booked"})

		assert.Equal(t, quarterSlots(), reconciled)
	})

	t.Run("Booking Inside One Slot Marks Only It", func(t *testing.T) {
		reconciled := ReconcileSlots(quarterSlots(), models.BookedInterval{Start: at(9, 20), End: at(9, 25), Status: "booked"})

		assert.False(t, reconciled[0].IsBooked)
		assert.True(t, reconciled[1].IsBooked)
		assert.False(t, reconciled[2].IsBooked)
	})

	t.Run("Unparseable Slot Is Left Alone", func(t *testing.T) {
		slots := []models.Slot{{SlotID: 1, StartDateTime: "soon", EndDateTime: "later", Status: "available"}}
		reconciled := ReconcileSlots(slots, models.BookedInterval{Start: at(0, 0), End: at(23, 59), Status: "booked"})

		assert.Equal(t, slots, reconciled)
	})

	t.Run("Empty List", func(t *testing.T) {
		reconciled := ReconcileSlots([]models.Slot{}, models.BookedInterval{Start: at(9, 0), End: at(9, 30)})
		assert.Empty(t, reconciled)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	span := func(startH, startM, endH, endM int) interval {
		return interval{Start: at(startH, startM), End: at(endH, endM)}
	}
	assert.True(t, span(9, 0, 9, 30).overlaps(span(9, 15, 9, 45)))
	assert.False(t, span(9, 0, 9, 15).overlaps(span(9, 15, 9, 30)))
	assert.False(t, span(9, 15, 9, 30).overlaps(span(9, 0, 9, 15)))
	assert.True(t, span(9, 0, 10, 0).overlaps(span(9, 15, 9, 30)))
}

func TestMapSlots(t *testing.T) {
	slots := MapSlots([]responses.Slot{
		{Date: "2025-01-04", StartDateTime: "2025-01-04T09:00:00", EndDateTime: "2025-01-04T09:15:00", Status: "available"},
		{Date: "2025-01-04", StartDateTime: "2025-01-04T09:15:00", EndDateTime: "2025-01-04T09:30:00", Status: "unavailable"},
	})

	require.Len(t, slots, 2)
	assert.Equal(t, 1, slots[0].SlotID)
	assert.False(t, slots[0].IsBooked)
	assert.Equal(t, 2, slots[1].SlotID)
	assert.True(t, slots[1].IsBooked)
}

func TestFilterSlotsByDate(t *testing.T) {
	slots := []models.Slot{{SlotID: 1, Date: "2025-01-04"}, {SlotID: 2, Date: "2025-01-05"}}
	filtered := FilterSlotsByDate(slots, "2025-01-05")

	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].SlotID)
}
