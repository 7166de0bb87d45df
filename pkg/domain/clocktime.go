package domain

import (
	"fmt"
	"regexp"

	dErrors "picoplaca/pkg/domain-errors"
)

// ClockTime is a validated 24-hour wall-clock time with minute precision.
type ClockTime struct {
	hour   int
	minute int
}

var clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClockTime constructs a ClockTime from an HH:MM string. Exactly two
// digits per component; 12-hour markers (AM/PM) and seconds are rejected by
// the format itself.
func ParseClockTime(s string) (ClockTime, error) {
	if s == "" {
		return ClockTime{}, dErrors.New(dErrors.CodeInvalidInput, "time cannot be empty")
	}
	if !clockTimePattern.MatchString(s) {
		return ClockTime{}, dErrors.New(dErrors.CodeInvalidInput,
			"time must be in the 24-hour format HH:MM (e.g. 08:31, 14:22, 00:01)")
	}
	// The pattern guarantees two ASCII digits per component.
	return ClockTime{
		hour:   int(s[0]-'0')*10 + int(s[1]-'0'),
		minute: int(s[3]-'0')*10 + int(s[4]-'0'),
	}, nil
}

// NewClockTime builds a time from components without validation. Intended for
// tests and constant tables.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{hour: hour, minute: minute}
}

// MinuteOfDay returns minutes elapsed since midnight, the total order used for
// window containment checks.
func (t ClockTime) MinuteOfDay() int { return t.hour*60 + t.minute }

func (t ClockTime) Hour() int { return t.hour }

func (t ClockTime) Minute() int { return t.minute }

func (t ClockTime) String() string { return fmt.Sprintf("%02d:%02d", t.hour, t.minute) }
