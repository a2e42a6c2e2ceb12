// Package checklist implements the daily checklist core: the live task
// list, the per-day history archive, and the rollover state machine that
// ties them together at the 3 AM day boundary.
package checklist

import (
	"fmt"
	"time"
)

// DefaultResetHour is the local hour at which a new checklist day begins.
// The bookkeeping day runs 03:00-02:59, not midnight to midnight, so a
// late night still counts toward the previous day.
const DefaultResetHour = 3

const dayKeyLayout = "2006-01-02"

// DayKey identifies one rollover period as a YYYY-MM-DD calendar date.
// The fixed-width layout makes string comparison equivalent to date
// comparison.
type DayKey string

// KeyFor derives the day key for an instant. Times before resetHour are
// attributed to the previous calendar day. Every key derivation in the
// repository goes through this function.
func KeyFor(t time.Time, resetHour int) DayKey {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() < resetHour {
		day = day.AddDate(0, 0, -1)
	}
	return DayKey(day.Format(dayKeyLayout))
}

// ParseDayKey validates a YYYY-MM-DD string.
func ParseDayKey(s string) (DayKey, error) {
	if _, err := time.ParseInLocation(dayKeyLayout, s, time.Local); err != nil {
		return "", fmt.Errorf("invalid day key %q: expected YYYY-MM-DD", s)
	}
	return DayKey(s), nil
}

// Time returns local midnight of the key's calendar date.
func (k DayKey) Time() time.Time {
	t, err := time.ParseInLocation(dayKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Prev returns the key one calendar day earlier.
func (k DayKey) Prev() DayKey {
	return DayKey(k.Time().AddDate(0, 0, -1).Format(dayKeyLayout))
}

// Next returns the key one calendar day later.
func (k DayKey) Next() DayKey {
	return DayKey(k.Time().AddDate(0, 0, 1).Format(dayKeyLayout))
}

// Before reports whether k is an earlier date than other.
func (k DayKey) Before(other DayKey) bool {
	return string(k) < string(other)
}

func (k DayKey) String() string {
	return string(k)
}
