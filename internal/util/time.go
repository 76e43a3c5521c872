package util

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the standard date key format for per-day records.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard datetime format for display.
	DateTimeFormat = "2006-01-02 15:04:05"

	// ISO8601Format is the RFC3339 format used for persisted timestamps.
	ISO8601Format = time.RFC3339
)

// FormatDate formats a time as a YYYY-MM-DD date key.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatDateTime formats a time as a datetime string.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// FormatISO8601 formats a time as an ISO8601/RFC3339 string.
func FormatISO8601(t time.Time) string {
	return t.Format(ISO8601Format)
}

// ParseDate parses a YYYY-MM-DD date key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// ParseISO8601 parses an ISO8601/RFC3339 string.
func ParseISO8601(s string) (time.Time, error) {
	return time.Parse(ISO8601Format, s)
}

// Today returns the current local calendar date as a YYYY-MM-DD key.
// Resolved at call time, never cached, so a session crossing midnight
// starts writing to the new day's records on the next operation.
func Today() string {
	return FormatDate(time.Now())
}

// IsSameDay checks if two times are on the same calendar day.
func IsSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight of the given day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday beginning the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday puts Sunday at 0; shift so Monday is the first column.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	first := StartOfMonth(t)
	return first.AddDate(0, 1, -1).Day()
}

// LastNDates returns the date keys of the n days ending at (and including)
// the given day, oldest first.
func LastNDates(end time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, FormatDate(end.AddDate(0, 0, -i)))
	}
	return dates
}

// RelativeTimeString returns a human-readable relative time string.
func RelativeTimeString(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	}
}
