//go:build unit

package schedule_test

import (
	"sort"
	"testing"

	"bookmarket/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictIndexOverlaps(t *testing.T) {
	idx := schedule.NewConflictIndex([]schedule.BusyInterval{
		{Start: mustClock(t, "10:00"), End: mustClock(t, "10:30")},
	})

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical interval conflicts", "10:00", "10:30", true},
		{"partial overlap from the left conflicts", "09:45", "10:15", true},
		{"partial overlap from the right conflicts", "10:15", "10:45", true},
		{"candidate containing the booking conflicts", "09:30", "11:00", true},
		{"candidate inside the booking conflicts", "10:10", "10:20", true},
		{"touching end does not conflict", "09:30", "10:00", false},
		{"touching start does not conflict", "10:30", "11:00", false},
		{"disjoint interval does not conflict", "11:00", "11:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := idx.Overlaps(mustClock(t, tc.start), mustClock(t, tc.end))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConflictIndexIgnoresDegenerateIntervals(t *testing.T) {
	idx := schedule.NewConflictIndex([]schedule.BusyInterval{
		{Start: mustClock(t, "10:00"), End: mustClock(t, "10:00")},
		{Start: mustClock(t, "11:00"), End: mustClock(t, "10:00")},
	})
	assert.False(t, idx.Overlaps(mustClock(t, "09:00"), mustClock(t, "12:00")))
}

func TestGenerateSlots(t *testing.T) {
	shift := schedule.OpenHours(mustClock(t, "09:00"), mustClock(t, "18:00"))

	t.Run("one booking excludes exactly its candidate", func(t *testing.T) {
		idx := schedule.NewConflictIndex([]schedule.BusyInterval{
			{Start: mustClock(t, "10:00"), End: mustClock(t, "10:30")},
		})

		got := schedule.GenerateSlots(shift, 30, idx)

		// Every half-hour mark from 09:00 through 17:30 except 10:00.
		var want []schedule.MinuteOfDay
		for s := mustClock(t, "09:00"); s <= mustClock(t, "17:30"); s += schedule.Granularity {
			if s == mustClock(t, "10:00") {
				continue
			}
			want = append(want, s)
		}
		require.Len(t, got, 17)
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("slot must leave room for the full duration", func(t *testing.T) {
		got := schedule.GenerateSlots(shift, 60, schedule.NewConflictIndex(nil))
		require.NotEmpty(t, got)
		last := got[len(got)-1]
		assert.Equal(t, "17:00", last.String(), "17:30 would run past closing")
	})

	t.Run("closed shift yields nothing", func(t *testing.T) {
		assert.Empty(t, schedule.GenerateSlots(schedule.Closed(), 30, schedule.NewConflictIndex(nil)))
	})

	t.Run("degenerate durations yield nothing", func(t *testing.T) {
		assert.Empty(t, schedule.GenerateSlots(shift, 0, schedule.NewConflictIndex(nil)))
		assert.Empty(t, schedule.GenerateSlots(shift, -15, schedule.NewConflictIndex(nil)))
	})

	t.Run("duration longer than the shift yields nothing", func(t *testing.T) {
		short := schedule.OpenHours(mustClock(t, "09:00"), mustClock(t, "10:00"))
		assert.Empty(t, schedule.GenerateSlots(short, 90, schedule.NewConflictIndex(nil)))
	})

	t.Run("fully booked back-to-back shift contributes zero slots", func(t *testing.T) {
		idx := schedule.NewConflictIndex([]schedule.BusyInterval{
			{Start: mustClock(t, "09:00"), End: mustClock(t, "12:00")},
			{Start: mustClock(t, "12:00"), End: mustClock(t, "18:00")},
		})
		assert.Empty(t, schedule.GenerateSlots(shift, 30, idx))
	})

	t.Run("no conflict for every candidate end within shift", func(t *testing.T) {
		got := schedule.GenerateSlots(shift, 45, schedule.NewConflictIndex(nil))
		for _, s := range got {
			assert.LessOrEqual(t, int(s)+45, int(shift.End))
		}
	})
}

func TestAggregateSlots(t *testing.T) {
	t.Run("two staff, one blocked at the first mark", func(t *testing.T) {
		shift := schedule.OpenHours(mustClock(t, "09:00"), mustClock(t, "12:00"))

		free := schedule.GenerateSlots(shift, 30, schedule.NewConflictIndex(nil))
		booked := schedule.GenerateSlots(shift, 30, schedule.NewConflictIndex([]schedule.BusyInterval{
			{Start: mustClock(t, "09:00"), End: mustClock(t, "09:30")},
		}))

		slots := schedule.AggregateSlots([][]schedule.MinuteOfDay{free, booked})

		require.NotEmpty(t, slots)
		assert.Equal(t, "09:00", slots[0].Time)
		assert.Equal(t, 1, slots[0].StaffCount, "only the unbooked staff offers 09:00")
		assert.Equal(t, 2, slots[1].StaffCount)
		for _, s := range slots {
			assert.Equal(t, schedule.SlotAvailable, s.Status)
		}
	})

	t.Run("output is sorted with no duplicate times", func(t *testing.T) {
		a := []schedule.MinuteOfDay{mustClock(t, "11:00"), mustClock(t, "09:00")}
		b := []schedule.MinuteOfDay{mustClock(t, "09:00"), mustClock(t, "10:00")}

		slots := schedule.AggregateSlots([][]schedule.MinuteOfDay{a, b})

		times := make([]string, len(slots))
		for i, s := range slots {
			times[i] = s.Time
		}
		assert.True(t, sort.StringsAreSorted(times), "lexicographic order on zero-padded HH:MM")

		seen := make(map[string]bool)
		for _, ts := range times {
			assert.False(t, seen[ts], "duplicate time %s", ts)
			seen[ts] = true
		}
	})

	t.Run("no contributions emits an empty list, not busy entries", func(t *testing.T) {
		slots := schedule.AggregateSlots(nil)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("identical inputs produce identical output", func(t *testing.T) {
		in := [][]schedule.MinuteOfDay{
			{mustClock(t, "09:00"), mustClock(t, "09:30")},
			{mustClock(t, "09:30")},
		}
		first := schedule.AggregateSlots(in)
		second := schedule.AggregateSlots(in)
		assert.Empty(t, cmp.Diff(first, second))
	})
}
