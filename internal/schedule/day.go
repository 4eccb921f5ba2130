package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the only date format accepted in or produced for a schedule.
const DayLayout = "01/02/2006"

// Day is a calendar day with no time-of-day or timezone component.
type Day struct {
	t time.Time
}

// DayOf truncates t to its calendar day in t's own location.
func DayOf(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewDay builds a Day from its components.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in the local timezone.
func Today() Day {
	return DayOf(time.Now().In(time.Local))
}

// ParseDay reads an MM/DD/YYYY date.
func ParseDay(value string) (Day, error) {
	parsed, err := time.Parse(DayLayout, strings.TrimSpace(value))
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return DayOf(parsed), nil
}

// AddDays shifts the day by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// After reports whether d is later than other.
func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether d is the zero Day, used for entries opened without a week.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return d.t
}

// String formats the day as MM/DD/YYYY, or "" for the zero Day.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
