package utils

import (
	"mediconnect-portal/internal/pkg/dto/requests"
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = SanitizeEmail(input.Email)
}

func SanitizeCreateScheduleRequest(input *requests.CreateSchedule) {
	input.DayOff = strings.TrimSpace(input.DayOff)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	for i := range input.Breaks {
		input.Breaks[i].StartTime = strings.TrimSpace(input.Breaks[i].StartTime)
		input.Breaks[i].EndTime = strings.TrimSpace(input.Breaks[i].EndTime)
		input.Breaks[i].Reason = strings.TrimSpace(input.Breaks[i].Reason)
	}
	if wd, ok := ParseWeekday(input.DayOff); ok {
		input.DayOff = wd.String()
	}
}

func SanitizeSearchQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
