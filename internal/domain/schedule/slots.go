package schedule

import "sort"

// Granularity is the fixed step between candidate slot start times.
const Granularity MinuteOfDay = 30

type SlotStatus string

const (
	// SlotAvailable is the only status the engine emits. SlotBusy exists
	// for consumers that diff the result against a full theoretical grid;
	// zero-coverage times are absent from engine output, not marked busy.
	SlotAvailable SlotStatus = "available"
	SlotBusy      SlotStatus = "busy"
)

// Slot is one offerable appointment start time with the number of
// distinct staff members able to take it.
type Slot struct {
	Time       string     `json:"time"`
	Status     SlotStatus `json:"status"`
	StaffCount int        `json:"staff_count"`
}

// GenerateSlots enumerates candidate start times for one staff member's
// effective shift and filters out conflicts. Candidates step from shift
// start by Granularity; a candidate whose end (start + duration) would
// run past shift end is never offered, so generation stops there. A
// closed shift or degenerate duration yields nothing.
func GenerateSlots(shift DayHours, durationMinutes int, conflicts *ConflictIndex) []MinuteOfDay {
	if !shift.Open || durationMinutes <= 0 {
		return nil
	}

	duration := MinuteOfDay(durationMinutes)
	var out []MinuteOfDay
	for start := shift.Start; start+duration <= shift.End; start += Granularity {
		if conflicts.Overlaps(start, start+duration) {
			continue
		}
		out = append(out, start)
	}
	return out
}

// AggregateSlots merges per-staff contributions into the final sorted
// slot list. Times are grouped, staffCount is the number of contributing
// staff, and the result is sorted ascending; because String() zero-pads,
// chronological order and lexicographic order of the emitted time
// strings coincide.
func AggregateSlots(contributions [][]MinuteOfDay) []Slot {
	counts := make(map[MinuteOfDay]int)
	for _, times := range contributions {
		for _, t := range times {
			counts[t]++
		}
	}

	times := make([]MinuteOfDay, 0, len(counts))
	for t := range counts {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	slots := make([]Slot, len(times))
	for i, t := range times {
		slots[i] = Slot{
			Time:       t.String(),
			Status:     SlotAvailable,
			StaffCount: counts[t],
		}
	}
	return slots
}
