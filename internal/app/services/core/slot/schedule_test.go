package slot

import (
	"errors"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchedule(t *testing.T) {
	valid := func() *requests.CreateSchedule {
		return &requests.CreateSchedule{
			DayOff:    "Sunday",
			StartTime: "09:00",
			EndTime:   "17:00",
			Breaks: []requests.ScheduleBreak{
				{StartTime: "13:00", EndTime: "14:00", Reason: "Lunch"},
			},
		}
	}

	t.Run("Valid Schedule", func(t *testing.T) {
		assert.NoError(t, ValidateSchedule(valid()))
	})

	t.Run("End Before Start", func(t *testing.T) {
		request := valid()
		request.EndTime = "08:00"

		err := ValidateSchedule(request)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Malformed Clock", func(t *testing.T) {
		request := valid()
		request.StartTime = "9am"
		assert.Error(t, ValidateSchedule(request))
	})

	t.Run("Break Outside Working Hours", func(t *testing.T) {
		request := valid()
		request.Breaks[0] = requests.ScheduleBreak{StartTime: "16:30", EndTime: "17:30"}
		assert.Error(t, ValidateSchedule(request))
	})

	t.Run("Inverted Break", func(t *testing.T) {
		request := valid()
		request.Breaks[0] = requests.ScheduleBreak{StartTime: "14:00", EndTime: "13:00"}
		assert.Error(t, ValidateSchedule(request))
	})
}
