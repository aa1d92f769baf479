package utils

import (
	"mediconnect-portal/internal/pkg/constvars"
	"strings"
	"time"
)

var apiDateTimeLayouts = []string{
	time.RFC3339Nano,
	constvars.LocalDateTimeLayout,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseAPIDateTime accepts the datetime shapes the hospital API emits. Values
// without an offset are read as wall-clock time in loc.
func ParseAPIDateTime(value string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range apiDateTimeLayouts {
		t, err := time.ParseInLocation(layout, strings.TrimSpace(value), loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatLocalISO renders t as wall-clock time in loc, without an offset.
func FormatLocalISO(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(constvars.LocalDateTimeLayout)
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, loc)
}

func ParseClock(value string) (time.Time, error) {
	return time.Parse(constvars.ClockLayout, value)
}

func ParseWeekday(name string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), strings.TrimSpace(name)) {
			return wd, true
		}
	}
	return time.Sunday, false
}
