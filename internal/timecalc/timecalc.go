package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the canonical date key format used throughout storage.
const dateLayout = "2006-01-02"

// ClockToMinutes parses an "HH:MM" clock time into a minute-of-day offset.
// Empty or malformed input yields 0: clock input never fails here, it
// degrades to a neutral value.
func ClockToMinutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// MinutesToClock is the inverse of ClockToMinutes, clamped to [0, 1440].
// 1440 renders as "24:00", the end-of-day boundary.
func MinutesToClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 1440 {
		minutes = 1440
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatHM formats a minute count as "H:MM", e.g. 450 -> "7:30".
// Rounds to the nearest minute and floors negatives to zero; hours are
// unbounded and unpadded.
func FormatHM(minutes float64) string {
	m := int(math.Round(minutes))
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// ParseLocaleNumber parses a number accepting either comma or dot as the
// decimal separator. Empty or non-numeric input yields 0.
func ParseLocaleNumber(text string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ParseDate parses a "YYYY-MM-DD" date key in the local time zone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, time.Local)
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" key.
func ValidDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

// atNoon pins a date key to 12:00 local time. Calendar arithmetic on the
// noon instant cannot drift across a day boundary through DST transitions.
func atNoon(date string) time.Time {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
}

// ISOWeekKey returns the ISO-8601 week identifier of a date key, like
// "2024-W01". Weeks start Monday and belong to the year that owns their
// Thursday, so the week-year can differ from the calendar year around
// January 1st.
func ISOWeekKey(date string) string {
	year, week := atNoon(date).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey returns the "YYYY-MM" month identifier of a date key.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// YearKey returns the 4-digit year of a date key.
func YearKey(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

// AddDays steps a date key forward (or back, for negative n) by whole
// calendar days.
func AddDays(date string, n int) string {
	return atNoon(date).AddDate(0, 0, n).Format(dateLayout)
}

// Today returns today's local date key.
func Today() string {
	return time.Now().Format(dateLayout)
}
