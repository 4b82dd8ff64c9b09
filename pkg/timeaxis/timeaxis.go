// Package timeaxis places wall-clock times on a single increasing axis
// that starts at a reference hour. With the default 18:00 reference a
// typical overnight sleep interval (22:00-07:00) maps to 4.0-13.0
// without wrapping around midnight.
package timeaxis

import (
	"fmt"
	"time"
)

// ReferenceHour is the start of the sleep-centric day axis (6 PM).
const ReferenceHour = 18.0

// OffsetHours converts a timestamp to hours elapsed since referenceHour
// on the axis, using the timestamp's own location for hour/minute
// extraction. A nil timestamp yields nil, e.g. when no optimal time has
// been configured. A time exactly at the reference hour maps to 0.
func OffsetHours(t *time.Time, referenceHour float64) *float64 {
	if t == nil {
		return nil
	}
	offset := ClockOffset(t.Hour(), t.Minute(), referenceHour)
	return &offset
}

// ClockOffset is OffsetHours for a bare hour/minute pair. Times before
// the reference hour belong to the following day on the axis.
func ClockOffset(hour, minute int, referenceHour float64) float64 {
	h := float64(hour) + float64(minute)/60.0
	if h < referenceHour {
		h += 24
	}
	return h - referenceHour
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayLabel returns the short weekday name ("Mon") of t in loc.
func DayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon")
}

// FormatDuration renders a second count as "7h 30m". Negative input is
// treated as zero so corrupted intervals never render as negative.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
