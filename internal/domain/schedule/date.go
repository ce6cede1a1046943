package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const isoDateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. Comparisons and
// weekday mapping are timezone-independent: the same "YYYY-MM-DD" string
// always resolves identically.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ISO returns the "YYYY-MM-DD" form, used as the key for exception maps.
func (d Date) ISO() string {
	return d.t.Format(isoDateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Within reports whether d falls in [from, to], inclusive on both ends.
func (d Date) Within(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

// Weekday is a business-local weekday index with a Saturday-first
// convention: 0=Saturday, 1=Sunday ... 6=Friday. Go's time.Weekday is
// Sunday-first; the remap happens exactly once, here, and every schedule
// lookup downstream uses this index.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

// WeekdayOf maps a date to its Saturday-first weekday index.
func WeekdayOf(d Date) Weekday {
	return Weekday((int(d.t.Weekday()) + 1) % 7)
}

func (w Weekday) Valid() bool {
	return w >= Saturday && w <= Friday
}
