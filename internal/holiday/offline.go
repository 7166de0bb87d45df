package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/rickar/cal/v2"

	"picoplaca/pkg/domain"
	dErrors "picoplaca/pkg/domain-errors"
)

// Supported year range of the built-in calendar. The observance-shifting rule
// below comes from the holiday reform to the Labor Code in force since January
// 2017; for earlier years the calendar would be wrong, so the oracle refuses
// rather than extrapolate backwards.
const (
	minSupportedYear = 2017
	maxSupportedYear = 2099
)

// statutoryShift encodes the holiday-shifting law: a fixed-date holiday
// falling on Tuesday is observed the previous Monday, on Wednesday or
// Thursday the Friday of the same week, on Saturday the previous Friday, and
// on Sunday the following Monday. Mondays and Fridays stay put. Easter-derived
// holidays are outside the law and never shift.
var statutoryShift = []cal.AltDay{
	{Day: time.Tuesday, Offset: -1},
	{Day: time.Wednesday, Offset: 2},
	{Day: time.Thursday, Offset: 1},
	{Day: time.Saturday, Offset: -1},
	{Day: time.Sunday, Offset: 1},
}

// ecuadorHolidays lists the national public holidays plus the Foundation of
// Quito, the local holiday relevant to this ordinance (Pichincha province).
func ecuadorHolidays() []*cal.Holiday {
	return []*cal.Holiday{
		{Name: "Año Nuevo", Type: cal.ObservancePublic, Month: time.January, Day: 1, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Lunes de Carnaval", Type: cal.ObservancePublic, Offset: -48, Func: cal.CalcEasterOffset},
		{Name: "Martes de Carnaval", Type: cal.ObservancePublic, Offset: -47, Func: cal.CalcEasterOffset},
		{Name: "Viernes Santo", Type: cal.ObservancePublic, Offset: -2, Func: cal.CalcEasterOffset},
		{Name: "Día de Pascua", Type: cal.ObservancePublic, Offset: 0, Func: cal.CalcEasterOffset},
		{Name: "Día del Trabajo", Type: cal.ObservancePublic, Month: time.May, Day: 1, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Batalla de Pichincha", Type: cal.ObservancePublic, Month: time.May, Day: 24, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Primer Grito de Independencia", Type: cal.ObservancePublic, Month: time.August, Day: 10, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Independencia de Guayaquil", Type: cal.ObservancePublic, Month: time.October, Day: 9, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Día de los Difuntos", Type: cal.ObservancePublic, Month: time.November, Day: 2, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Independencia de Cuenca", Type: cal.ObservancePublic, Month: time.November, Day: 3, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Fundación de Quito", Type: cal.ObservancePublic, Month: time.December, Day: 6, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
		{Name: "Navidad", Type: cal.ObservancePublic, Month: time.December, Day: 25, Observed: statutoryShift, Func: cal.CalcDayOfMonth},
	}
}

// Offline answers holiday queries from the built-in calendar, applying the
// observance shifts. It is immutable after construction and safe for
// concurrent use.
type Offline struct {
	cal *cal.Calendar
}

// NewOffline builds the offline oracle with the Ecuadorian calendar loaded.
func NewOffline() *Offline {
	c := &cal.Calendar{Name: "Ecuador (Pichincha)"}
	c.AddHoliday(ecuadorHolidays()...)
	return &Offline{cal: c}
}

// IsHoliday reports whether the date is observed as a holiday. A date is a
// holiday only on its observed day: when Labour Day shifts from Saturday to
// Friday, the Friday answers true and the Saturday false.
//
// Errors: CodeInvalidInput for years outside the supported range.
func (o *Offline) IsHoliday(_ context.Context, date domain.CalendarDate) (bool, error) {
	if y := date.Year(); y < minSupportedYear || y > maxSupportedYear {
		return false, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("offline holiday calendar covers %d-%d; use --online for other years", minSupportedYear, maxSupportedYear))
	}
	_, observed, _ := o.cal.IsHoliday(date.Time())
	return observed, nil
}
