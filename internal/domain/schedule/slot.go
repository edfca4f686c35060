package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "3:04 PM"

	DefaultDuration = 30 * time.Minute
)

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be H:MM AM/PM")
)

// Slot is a concrete appointment window in the business timezone.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// ParseSlot turns the customer's date and "H:MM AM/PM" time into a slot in loc.
// A non-positive duration falls back to DefaultDuration.
func ParseSlot(date, clock string, loc *time.Location, duration time.Duration) (Slot, error) {
	if loc == nil {
		loc = time.UTC
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	clockOf, err := time.Parse(TimeLayout, normalizeClock(clock))
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), clockOf.Hour(), clockOf.Minute(), 0, 0, loc)
	return Slot{Start: start, End: start.Add(duration)}, nil
}

// normalizeClock accepts "2:00pm", "02:00 PM" and " 2:00  pm ".
func normalizeClock(raw string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix) + " " + suffix
			break
		}
	}
	return strings.TrimPrefix(s, "0")
}
