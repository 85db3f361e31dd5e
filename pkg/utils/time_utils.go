package utils

import "time"

// Canonical wire formats for the whole app. Dates and date-times travel as
// local wall-clock strings; the storage layer is the only place that converts
// to and from time.Time.
const (
	LayoutDate     = "2006-01-02"
	LayoutDateTime = "2006-01-02T15:04"

	layoutDisplayDate     = "Jan 02, 2006"
	layoutDisplayDateTime = "Jan 02, 2006 at 3:04 PM"
)

// ParseDate parses a canonical date-only string in local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, s, time.Local)
}

// ParseDateTime parses a canonical date-time string in local time.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDateTime, s, time.Local)
}

// FormatDate renders t as a canonical date string, "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(LayoutDate)
}

// FormatDateTime renders t as a canonical date-time string, "" for the zero time.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(LayoutDateTime)
}

// FormatDisplayDate converts a canonical date string to a human-readable one,
// e.g. "2024-06-01" -> "Jun 01, 2024". Returns the input unchanged if it does
// not parse.
func FormatDisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(layoutDisplayDate)
}

// FormatDisplayDateTime converts a canonical date-time string to a
// human-readable one, e.g. "2024-06-01T08:00" -> "Jun 01, 2024 at 8:00 AM".
// Returns the input unchanged if it does not parse.
func FormatDisplayDateTime(s string) string {
	t, err := ParseDateTime(s)
	if err != nil {
		return s
	}
	return t.Format(layoutDisplayDateTime)
}
