package schedule

// BusyInterval is an existing booking's occupied window within one day.
type BusyInterval struct {
	Start MinuteOfDay
	End   MinuteOfDay
}

// ConflictIndex answers interval-overlap queries against a staff
// member's active bookings for one date. It is built once per staff per
// resolution call and holds no other state.
type ConflictIndex struct {
	busy []BusyInterval
}

func NewConflictIndex(intervals []BusyInterval) *ConflictIndex {
	idx := &ConflictIndex{busy: make([]BusyInterval, 0, len(intervals))}
	for _, iv := range intervals {
		if iv.End <= iv.Start {
			continue
		}
		idx.busy = append(idx.busy, iv)
	}
	return idx
}

// Overlaps applies the half-open interval test: a candidate conflicts
// when candidateStart < busyEnd && candidateEnd > busyStart. Touching
// endpoints (one booking ending exactly when the next starts) do not
// conflict.
func (idx *ConflictIndex) Overlaps(start, end MinuteOfDay) bool {
	for _, iv := range idx.busy {
		if start < iv.End && end > iv.Start {
			return true
		}
	}
	return false
}
