package slot

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"strings"
	"time"
)

// ComputeAvailableDates walks lookahead days starting at today and keeps the
// dates whose English weekday name is not an off day. Dates and weekdays are
// both taken in today's location.
func ComputeAvailableDates(offDays []string, today time.Time, lookahead int) []models.AvailableDate {
	if lookahead <= 0 {
		lookahead = constvars.DefaultLookaheadDay
	}

	off := make(map[string]struct{}, len(offDays))
	for _, day := range offDays {
		off[strings.ToLower(strings.TrimSpace(day))] = struct{}{}
	}

	y, m, d := today.Date()
	dates := make([]models.AvailableDate, 0, lookahead)
	for i := 0; i < lookahead; i++ {
		date := time.Date(y, m, d+i, 0, 0, 0, 0, today.Location())
		weekday := date.Weekday().String()
		if _, isOff := off[strings.ToLower(weekday)]; isOff {
			continue
		}
		dates = append(dates, models.AvailableDate{
			Date: date.Format(constvars.DateLayout),
			Day:  weekday,
		})
	}
	return dates
}

// OffDaysFromSchedules collects the day_off of every schedule config.
func OffDaysFromSchedules(schedules []models.ScheduleConfig) []string {
	offDays := make([]string, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.DayOff != "" {
			offDays = append(offDays, schedule.DayOff)
		}
	}
	return offDays
}
