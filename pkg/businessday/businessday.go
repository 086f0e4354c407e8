// Package businessday is the single authority for "today" and for
// calendar-day arithmetic. Every component that filters or tracks by
// the current date goes through a Clock fixed to the institution's
// timezone; recomputing "today" per caller (or in UTC) shifts the
// authorized-absent window by a day near midnight.
package businessday

import (
	"fmt"
	"time"
)

const (
	// Timezone the institution operates in; overridable via config.
	DefaultTimezone = "Asia/Kolkata"

	dateLayout = "2006-01-02"
)

type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) (*Clock, error) {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load institution timezone %q: %w", tz, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixedClock pins the clock to a known instant; for tests.
func NewFixedClock(at time.Time, tz string) (*Clock, error) {
	c, err := NewClock(tz)
	if err != nil {
		return nil, err
	}
	c.now = func() time.Time { return at }
	return c, nil
}

// Now is the current instant in the institution's timezone.
func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Today is the current business date as a date-only value.
func (c *Clock) Today() time.Time {
	y, m, d := c.now().In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a date-only value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the time-of-day and zone from t, keeping its
// calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate parses a canonical YYYY-MM-DD string into a date-only value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

// FormatDate renders a date-only value back to YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

// DaysInclusive counts calendar days in [from, to] with both endpoints
// included: a one-day leave consumes 1 day, not 0.
func DaysInclusive(from, to time.Time) int {
	f, t := Normalize(from), Normalize(to)
	return int(t.Sub(f)/(24*time.Hour)) + 1
}
