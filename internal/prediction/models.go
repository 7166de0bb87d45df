package prediction

import (
	"fmt"

	"picoplaca/pkg/domain"
)

// Request carries the raw inputs of one evaluation. Validation happens inside
// Evaluate so every caller gets the same fixed check order.
type Request struct {
	Plate  string
	Date   string
	Time   string
	Online bool
}

// Reason classifies why a verdict came out the way it did.
type Reason string

const (
	// ReasonHoliday: the date is a public holiday, restrictions are lifted.
	ReasonHoliday Reason = "holiday"
	// ReasonExemptPlate: diplomatic or official vehicle class.
	ReasonExemptPlate Reason = "exempt_plate"
	// ReasonWeekend: Saturdays and Sundays are never restricted.
	ReasonWeekend Reason = "weekend"
	// ReasonDigitNotRestricted: the plate digit's restricted day is another weekday.
	ReasonDigitNotRestricted Reason = "digit_not_restricted"
	// ReasonOffPeak: right day, but the time is outside both peak windows.
	ReasonOffPeak Reason = "off_peak"
	// ReasonRestricted: restricted day and peak time; the vehicle must stay off the road.
	ReasonRestricted Reason = "restricted"
)

// Verdict is the outcome of one evaluation. It carries the validated inputs so
// transports can render the canonical message without re-parsing.
type Verdict struct {
	Plate        domain.Plate
	Date         domain.CalendarDate
	Time         domain.ClockTime
	CanCirculate bool
	Reason       Reason
	Source       string
}

// Message renders the canonical human-readable verdict sentence.
func (v *Verdict) Message() string {
	verb := "CAN"
	if !v.CanCirculate {
		verb = "CANNOT"
	}
	return fmt.Sprintf("The vehicle with plate %s %s be on the road on %s at %s.",
		v.Plate, verb, v.Date, v.Time)
}
