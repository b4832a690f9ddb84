package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	clockLayout = "15:04:05"

	// SlotMinutes is the fixed unit-slot granularity used for both slot
	// enumeration and conflict math.
	SlotMinutes = 30
)

// NormalizeClock trims a time-of-day string and pads "HH:MM" to "HH:MM:SS".
func NormalizeClock(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) == 5 {
		s += ":00"
	}
	return s
}

// ParseClock converts a "HH:MM" or "HH:MM:SS" string into minutes since
// midnight.
func ParseClock(raw string) (int, error) {
	t, err := time.Parse(clockLayout, NormalizeClock(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", raw, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM:SS".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// ParseDate parses a "2006-01-02" calendar date.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}
