// Package restriction encodes the Pico y Placa ordinance's rule table.
//
// This is pure domain logic - no I/O, no side effects. The digit-to-weekday
// mapping and the peak-hour windows are kept as constant data so the ordinance
// stays auditable in one place instead of being scattered across conditionals.
package restriction

import (
	"time"

	"picoplaca/pkg/domain"
)

// restrictedWeekday maps the final plate digit to the weekday the vehicle is
// barred from circulating, per the ordinance:
//
//	1, 2 -> Monday
//	3, 4 -> Tuesday
//	5, 6 -> Wednesday
//	7, 8 -> Thursday
//	9, 0 -> Friday
//
// Saturday and Sunday are absent: weekends are never restricted.
var restrictedWeekday = map[int]time.Weekday{
	1: time.Monday,
	2: time.Monday,
	3: time.Tuesday,
	4: time.Tuesday,
	5: time.Wednesday,
	6: time.Wednesday,
	7: time.Thursday,
	8: time.Thursday,
	9: time.Friday,
	0: time.Friday,
}

// Window is an inclusive wall-clock interval. Both endpoints count as inside,
// so a vehicle checked at exactly 07:00 or 09:30 is restricted.
type Window struct {
	Start domain.ClockTime
	End   domain.ClockTime
}

// Contains reports whether t falls within the window, endpoints included.
func (w Window) Contains(t domain.ClockTime) bool {
	m := t.MinuteOfDay()
	return m >= w.Start.MinuteOfDay() && m <= w.End.MinuteOfDay()
}

// PeakWindows are the two daily restriction windows of the ordinance.
var PeakWindows = [2]Window{
	{Start: domain.NewClockTime(7, 0), End: domain.NewClockTime(9, 30)},
	{Start: domain.NewClockTime(16, 0), End: domain.NewClockTime(19, 30)},
}

// RestrictedWeekday returns the weekday on which plates ending in lastDigit
// are restricted. ok is false for weekdays with no mapping (never the case for
// digits 0-9).
func RestrictedWeekday(lastDigit int) (day time.Weekday, ok bool) {
	day, ok = restrictedWeekday[lastDigit]
	return day, ok
}

// InPeakWindow reports whether t falls inside either restriction window.
func InPeakWindow(t domain.ClockTime) bool {
	for _, w := range PeakWindows {
		if w.Contains(t) {
			return true
		}
	}
	return false
}

// IsRestricted applies the full ordinance rule: the vehicle is restricted only
// when the weekday matches the digit's restricted day and the time falls
// inside a peak window.
func IsRestricted(weekday time.Weekday, lastDigit int, t domain.ClockTime) bool {
	day, ok := restrictedWeekday[lastDigit]
	if !ok || day != weekday {
		return false
	}
	return InPeakWindow(t)
}
