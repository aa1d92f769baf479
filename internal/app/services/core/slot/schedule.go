package slot

import (
	"fmt"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"strconv"
	"strings"
)

// ValidateSchedule checks a weekly schedule before it is sent to the hospital API.
// The working window must be non-empty and every break must sit inside it.
func ValidateSchedule(request *requests.CreateSchedule) error {
	start, ok1 := parseClock(request.StartTime)
	end, ok2 := parseClock(request.EndTime)
	if !ok1 || !ok2 || !validWindow(start, end) {
		return exceptions.ErrInvalidScheduleWindow(nil, request.StartTime, request.EndTime)
	}

	for i, b := range request.Breaks {
		breakStart, ok1 := parseClock(b.StartTime)
		breakEnd, ok2 := parseClock(b.EndTime)
		if !ok1 || !ok2 || !validWindow(breakStart, breakEnd) {
			return exceptions.ErrInvalidBreakWindow(fmt.Errorf("breaks[%d]: start must be before end", i), b.StartTime, b.EndTime)
		}
		if breakStart.minutes() < start.minutes() || breakEnd.minutes() > end.minutes() {
			return exceptions.ErrInvalidBreakWindow(fmt.Errorf("breaks[%d]: outside working hours", i), b.StartTime, b.EndTime)
		}
	}
	return nil
}

func parseClock(s string) (clock, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return clock{}, false
	}
	return clock{H: h, M: m}, true
}

func validWindow(a, b clock) bool {
	return a.minutes() < b.minutes()
}
