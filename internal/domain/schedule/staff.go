package schedule

// WeeklyShift is one weekday row of a staff member's recurring
// availability, unique per (staff, weekday).
type WeeklyShift struct {
	Weekday Weekday
	Closed  bool
	Start   MinuteOfDay
	End     MinuteOfDay
}

// StaffException overrides the weekly row for a single date. Exceptions
// are closed-only: they can shorten availability to nothing but never
// extend it, so an open exception simply defers to the weekly row.
type StaffException struct {
	Date   Date
	Closed bool
	Reason string
}

// StaffWeek holds one staff member's schedule prepared for per-date
// lookup: weekly rows by weekday, exceptions by ISO date.
type StaffWeek struct {
	weekly     map[Weekday]WeeklyShift
	exceptions map[string]StaffException
}

func NewStaffWeek(weekly []WeeklyShift, exceptions []StaffException) *StaffWeek {
	sw := &StaffWeek{
		weekly:     make(map[Weekday]WeeklyShift, len(weekly)),
		exceptions: make(map[string]StaffException, len(exceptions)),
	}
	for _, w := range weekly {
		sw.weekly[w.Weekday] = w
	}
	for _, e := range exceptions {
		sw.exceptions[e.Date.ISO()] = e
	}
	return sw
}

// ResolveStaffShift computes the staff member's effective shift for a
// date. A closed exception for the exact date wins; otherwise the weekly
// row for the mapped weekday decides. A missing weekly row resolves to
// closed (fail-safe, never fail-open).
func (sw *StaffWeek) ResolveStaffShift(date Date) DayHours {
	if exc, ok := sw.exceptions[date.ISO()]; ok && exc.Closed {
		return Closed()
	}

	shift, ok := sw.weekly[WeekdayOf(date)]
	if !ok || shift.Closed {
		return Closed()
	}
	return OpenHours(shift.Start, shift.End)
}
