package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate      = "2006-01-02"
	layoutDateTime  = "2006-01-02 15:04:05"
	layoutFormLocal = "2006-01-02T15:04"
)

// NowUTC returns current time in UTC, the timezone stored in the DB.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDateTime parses a pickup datetime in local timezone. Accepts the stored
// "YYYY-MM-DD HH:MM:SS" form and the "YYYY-MM-DDTHH:MM" form the booking form
// posts.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(layoutDateTime, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutFormLocal, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("datetime %q: attendu %s", s, layoutDateTime)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
