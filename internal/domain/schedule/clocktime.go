package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidClockTime = errors.New("invalid clock time")

// MinuteOfDay is a time of day in minutes since midnight. All slot
// arithmetic happens on this type; the "HH:MM" form exists only at the
// API boundary.
type MinuteOfDay int

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * 60
)

// ParseClock parses a zero-padded "HH:MM" string.
func ParseClock(s string) (MinuteOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidClockTime
	}

	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, ErrInvalidClockTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidClockTime
	}

	return MinuteOfDay(h*minutesPerHour + m), nil
}

// String formats as zero-padded "HH:MM". The zero padding is load-bearing:
// aggregated slot output relies on lexicographic order of these strings
// matching chronological order.
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/minutesPerHour, int(m)%minutesPerHour)
}

func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m < minutesPerDay
}
