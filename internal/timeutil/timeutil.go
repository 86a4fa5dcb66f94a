// Package timeutil normalizes the textual timestamp forms Lux persists.
//
// Every stored timestamp uses the fixed layout "YYYY-MM-DD HH:MM:SS" with no
// timezone; dates use "YYYY-MM-DD". Lexicographic order on the canonical form
// equals chronological order, which the repositories rely on.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateTimeLayout is the canonical persisted timestamp form.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the canonical persisted date form.
	DateLayout = "2006-01-02"
	// ClockLayout is the optional due-time form on occurrences.
	ClockLayout = "15:04"
)

// Now returns the current local time in the canonical timestamp form.
func Now() string {
	return time.Now().Format(DateTimeLayout)
}

// Format renders t in the canonical timestamp form.
func Format(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// Today returns the current local date in the canonical date form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// AddDays shifts a canonical date by n days.
func AddDays(date string, n int) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q", date)
	}
	return d.AddDate(0, 0, n).Format(DateLayout), nil
}

// NormalizeDateTime coerces an input into the canonical timestamp form.
// Accepted inputs: a canonical timestamp, an ISO "T"-separated datetime,
// a datetime without seconds, or a bare date (expanded to midnight).
func NormalizeDateTime(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("empty timestamp")
	}
	v = strings.Replace(v, "T", " ", 1)

	for _, layout := range []string{DateTimeLayout, "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(DateTimeLayout), nil
		}
	}
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t.Format(DateTimeLayout), nil
	}
	return "", fmt.Errorf("unrecognized timestamp %q", s)
}

// NormalizeDate coerces an input into the canonical date form, accepting a
// bare date or anything NormalizeDateTime accepts (time part dropped).
func NormalizeDate(s string) (string, error) {
	v := strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t.Format(DateLayout), nil
	}
	dt, err := NormalizeDateTime(v)
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q", s)
	}
	return dt[:len(DateLayout)], nil
}

// NormalizeClock validates an optional HH:MM due time. Empty stays empty.
func NormalizeClock(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", nil
	}
	t, err := time.Parse(ClockLayout, v)
	if err != nil {
		return "", fmt.Errorf("unrecognized time %q", s)
	}
	return t.Format(ClockLayout), nil
}

// MoveToDate shifts an interval to start on a new date at the same clock
// time, preserving the interval's duration. Inputs must be canonical.
func MoveToDate(startDT, endDT, date string) (newStart, newEnd string, err error) {
	s, err := time.Parse(DateTimeLayout, startDT)
	if err != nil {
		return "", "", fmt.Errorf("unrecognized timestamp %q", startDT)
	}
	e, err := time.Parse(DateTimeLayout, endDT)
	if err != nil {
		return "", "", fmt.Errorf("unrecognized timestamp %q", endDT)
	}
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", "", fmt.Errorf("unrecognized date %q", date)
	}

	ns := time.Date(d.Year(), d.Month(), d.Day(), s.Hour(), s.Minute(), s.Second(), 0, s.Location())
	ne := ns.Add(e.Sub(s))
	return ns.Format(DateTimeLayout), ne.Format(DateTimeLayout), nil
}

// DayBounds returns the canonical [midnight, midnight-next) bounds for a date.
func DayBounds(date string) (start, end string, err error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", "", fmt.Errorf("unrecognized date %q", date)
	}
	return d.Format(DateTimeLayout), d.AddDate(0, 0, 1).Format(DateTimeLayout), nil
}

// Overlaps reports whether the interval [aStart, aEnd) intersects
// [bStart, bEnd) with strictly positive overlap. Intervals that merely touch
// at a boundary do not overlap. Inputs must be in canonical form so string
// comparison is chronological.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
