package domain

import (
	"time"

	dErrors "picoplaca/pkg/domain-errors"
)

// CalendarDate is a validated Gregorian calendar date (no time-of-day).
// Invariant: the value represents a real date; Feb 30 or month 13 never make
// it past ParseCalendarDate.
type CalendarDate struct {
	t time.Time
}

// ParseCalendarDate constructs a CalendarDate from an ISO 8601 YYYY-MM-DD
// string. The strict stdlib parse rejects both malformed strings and
// well-formed but non-existent dates (leap years included).
func ParseCalendarDate(s string) (CalendarDate, error) {
	if s == "" {
		return CalendarDate{}, dErrors.New(dErrors.CodeInvalidInput, "date cannot be empty")
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return CalendarDate{}, dErrors.New(dErrors.CodeInvalidInput,
			"date must be a real calendar date in the format YYYY-MM-DD (e.g. 2021-04-02)")
	}
	return CalendarDate{t: t}, nil
}

// NewCalendarDate builds a date from components without string round-trips.
// Intended for tests and table construction; it does not validate.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Weekday returns the day of the week the date falls on.
func (d CalendarDate) Weekday() time.Weekday { return d.t.Weekday() }

// Year returns the calendar year.
func (d CalendarDate) Year() int { return d.t.Year() }

// Time returns the date at midnight UTC, for interop with time-based APIs.
func (d CalendarDate) Time() time.Time { return d.t }

func (d CalendarDate) String() string { return d.t.Format(time.DateOnly) }
