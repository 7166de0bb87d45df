package restriction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picoplaca/pkg/domain"
)

func mustTime(t *testing.T, s string) domain.ClockTime {
	t.Helper()
	ct, err := domain.ParseClockTime(s)
	require.NoError(t, err)
	return ct
}

func TestRestrictedWeekday_Table(t *testing.T) {
	expected := map[int]time.Weekday{
		1: time.Monday, 2: time.Monday,
		3: time.Tuesday, 4: time.Tuesday,
		5: time.Wednesday, 6: time.Wednesday,
		7: time.Thursday, 8: time.Thursday,
		9: time.Friday, 0: time.Friday,
	}
	for digit, want := range expected {
		day, ok := RestrictedWeekday(digit)
		require.True(t, ok, "digit %d must be mapped", digit)
		assert.Equal(t, want, day, "digit %d", digit)
	}
}

// TestWindow_BoundaryInclusivity pins the ordinance's boundary policy: times
// exactly on a window edge are restricted.
func TestWindow_BoundaryInclusivity(t *testing.T) {
	cases := []struct {
		time string
		in   bool
	}{
		{"06:59", false},
		{"07:00", true},
		{"08:00", true},
		{"09:30", true},
		{"09:31", false},
		{"10:00", false},
		{"15:59", false},
		{"16:00", true},
		{"19:30", true},
		{"19:31", false},
		{"00:00", false},
		{"23:59", false},
	}
	for _, tc := range cases {
		t.Run(tc.time, func(t *testing.T) {
			assert.Equal(t, tc.in, InPeakWindow(mustTime(t, tc.time)))
		})
	}
}

func TestIsRestricted(t *testing.T) {
	t.Run("matching day inside both windows", func(t *testing.T) {
		for _, digit := range []int{1, 2} {
			assert.True(t, IsRestricted(time.Monday, digit, mustTime(t, "07:00")))
			assert.True(t, IsRestricted(time.Monday, digit, mustTime(t, "09:30")))
			assert.True(t, IsRestricted(time.Monday, digit, mustTime(t, "16:00")))
			assert.True(t, IsRestricted(time.Monday, digit, mustTime(t, "19:30")))
		}
	})

	t.Run("matching day outside windows", func(t *testing.T) {
		for _, digit := range []int{1, 2} {
			assert.False(t, IsRestricted(time.Monday, digit, mustTime(t, "06:59")))
			assert.False(t, IsRestricted(time.Monday, digit, mustTime(t, "10:00")))
			assert.False(t, IsRestricted(time.Monday, digit, mustTime(t, "19:31")))
		}
	})

	t.Run("non-matching weekday is never restricted", func(t *testing.T) {
		peak := mustTime(t, "08:00")
		for digit := 0; digit <= 9; digit++ {
			restricted, _ := RestrictedWeekday(digit)
			for day := time.Monday; day <= time.Friday; day++ {
				if day == restricted {
					continue
				}
				assert.False(t, IsRestricted(day, digit, peak),
					"digit %d on %s", digit, day)
			}
		}
	})

	t.Run("weekends are never restricted", func(t *testing.T) {
		for _, day := range []time.Weekday{time.Saturday, time.Sunday} {
			for digit := 0; digit <= 9; digit++ {
				assert.False(t, IsRestricted(day, digit, mustTime(t, "08:00")))
				assert.False(t, IsRestricted(day, digit, mustTime(t, "17:00")))
			}
		}
	})
}
