// Package holiday answers whether a calendar date is an Ecuadorian public
// holiday.
//
// Two implementations exist behind the Oracle interface: Offline computes the
// answer from a built-in calendar that applies the statutory holiday-shifting
// law, and Online delegates to an external lookup service that does not. The
// divergence mirrors the upstream service's behavior and is intentional;
// callers choose a source explicitly, never by autodetection.
package holiday

import (
	"context"

	"picoplaca/pkg/domain"
)

// Oracle reports whether a date is observed as a public holiday.
type Oracle interface {
	IsHoliday(ctx context.Context, date domain.CalendarDate) (bool, error)
}
