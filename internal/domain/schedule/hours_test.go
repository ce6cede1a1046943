//go:build unit

package schedule_test

import (
	"testing"

	"bookmarket/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullWeekTemplate is active 09:00-18:00 every day.
func fullWeekTemplate(t *testing.T) schedule.WeekTemplate {
	t.Helper()
	days := make([]schedule.TemplateDay, 0, 7)
	for w := schedule.Saturday; w <= schedule.Friday; w++ {
		days = append(days, schedule.TemplateDay{
			Weekday: w,
			Active:  true,
			Start:   mustClock(t, "09:00"),
			End:     mustClock(t, "18:00"),
		})
	}
	return schedule.NewWeekTemplate(days)
}

func TestResolveBusinessHours(t *testing.T) {
	target := mustDate(t, "2026-04-15")

	t.Run("no rule falls back to template", func(t *testing.T) {
		hours, err := schedule.ResolveBusinessHours(fullWeekTemplate(t), schedule.NewRuleIndex(nil), target)
		require.NoError(t, err)
		assert.True(t, hours.Open)
		assert.Equal(t, mustClock(t, "09:00"), hours.Start)
		assert.Equal(t, mustClock(t, "18:00"), hours.End)
	})

	t.Run("inactive template day resolves closed", func(t *testing.T) {
		tpl := schedule.NewWeekTemplate([]schedule.TemplateDay{
			{Weekday: schedule.WeekdayOf(target), Active: false},
		})
		hours, err := schedule.ResolveBusinessHours(tpl, schedule.NewRuleIndex(nil), target)
		require.NoError(t, err)
		assert.False(t, hours.Open)
	})

	t.Run("missing template day resolves closed", func(t *testing.T) {
		hours, err := schedule.ResolveBusinessHours(schedule.WeekTemplate{}, schedule.NewRuleIndex(nil), target)
		require.NoError(t, err)
		assert.False(t, hours.Open)
	})

	t.Run("day off rule closes regardless of template", func(t *testing.T) {
		idx := schedule.NewRuleIndex([]schedule.CalendarRule{schedule.NewDayOffRule(target)})
		hours, err := schedule.ResolveBusinessHours(fullWeekTemplate(t), idx, target)
		require.NoError(t, err)
		assert.False(t, hours.Open)
	})

	t.Run("range off rule takes precedence over active template entry", func(t *testing.T) {
		rule, err := schedule.NewRangeOffRule(mustDate(t, "2026-04-10"), mustDate(t, "2026-04-20"))
		require.NoError(t, err)

		hours, err := schedule.ResolveBusinessHours(fullWeekTemplate(t), schedule.NewRuleIndex([]schedule.CalendarRule{rule}), target)
		require.NoError(t, err)
		assert.False(t, hours.Open)
	})

	t.Run("custom day rule overrides template hours", func(t *testing.T) {
		rule, err := schedule.NewCustomDayRule(target, mustClock(t, "12:00"), mustClock(t, "15:00"))
		require.NoError(t, err)

		hours, err := schedule.ResolveBusinessHours(fullWeekTemplate(t), schedule.NewRuleIndex([]schedule.CalendarRule{rule}), target)
		require.NoError(t, err)
		assert.True(t, hours.Open)
		assert.Equal(t, mustClock(t, "12:00"), hours.Start)
		assert.Equal(t, mustClock(t, "15:00"), hours.End)
	})

	t.Run("range custom rule applies on every date within the range", func(t *testing.T) {
		rule, err := schedule.NewRangeCustomRule(
			mustDate(t, "2026-04-14"), mustDate(t, "2026-04-16"),
			mustClock(t, "10:00"), mustClock(t, "14:00"),
		)
		require.NoError(t, err)
		idx := schedule.NewRuleIndex([]schedule.CalendarRule{rule})

		for _, day := range []string{"2026-04-14", "2026-04-15", "2026-04-16"} {
			hours, err := schedule.ResolveBusinessHours(fullWeekTemplate(t), idx, mustDate(t, day))
			require.NoError(t, err)
			assert.True(t, hours.Open, day)
			assert.Equal(t, mustClock(t, "10:00"), hours.Start, day)
		}

		hours, err := schedule.ResolveBusinessHours(fullWeekTemplate(t), idx, mustDate(t, "2026-04-17"))
		require.NoError(t, err)
		assert.Equal(t, mustClock(t, "09:00"), hours.Start, "outside the range the template applies")
	})

	t.Run("overlapping rules are flagged, not silently resolved", func(t *testing.T) {
		rangeRule, err := schedule.NewRangeOffRule(mustDate(t, "2026-04-10"), mustDate(t, "2026-04-20"))
		require.NoError(t, err)
		idx := schedule.NewRuleIndex([]schedule.CalendarRule{schedule.NewDayOffRule(target), rangeRule})

		_, err = schedule.ResolveBusinessHours(fullWeekTemplate(t), idx, target)
		assert.ErrorIs(t, err, schedule.ErrConflictingRules)
	})
}

func TestCalendarRuleConstructors(t *testing.T) {
	t.Run("custom day rejects inverted hours", func(t *testing.T) {
		_, err := schedule.NewCustomDayRule(mustDate(t, "2026-04-15"), mustClock(t, "15:00"), mustClock(t, "12:00"))
		assert.ErrorIs(t, err, schedule.ErrInvalidRule)
	})

	t.Run("custom day rejects zero-length hours", func(t *testing.T) {
		_, err := schedule.NewCustomDayRule(mustDate(t, "2026-04-15"), mustClock(t, "12:00"), mustClock(t, "12:00"))
		assert.ErrorIs(t, err, schedule.ErrInvalidRule)
	})

	t.Run("range rules reject inverted date ranges", func(t *testing.T) {
		_, err := schedule.NewRangeOffRule(mustDate(t, "2026-04-20"), mustDate(t, "2026-04-10"))
		assert.ErrorIs(t, err, schedule.ErrInvalidRule)

		_, err = schedule.NewRangeCustomRule(
			mustDate(t, "2026-04-20"), mustDate(t, "2026-04-10"),
			mustClock(t, "10:00"), mustClock(t, "14:00"),
		)
		assert.ErrorIs(t, err, schedule.ErrInvalidRule)
	})

	t.Run("single-date range is valid", func(t *testing.T) {
		d := mustDate(t, "2026-04-15")
		rule, err := schedule.NewRangeOffRule(d, d)
		require.NoError(t, err)
		assert.True(t, rule.Matches(d))
	})
}

func TestCalendarRuleIntersects(t *testing.T) {
	dayOff := schedule.NewDayOffRule(mustDate(t, "2026-04-15"))
	april, err := schedule.NewRangeOffRule(mustDate(t, "2026-04-10"), mustDate(t, "2026-04-20"))
	require.NoError(t, err)
	may, err := schedule.NewRangeOffRule(mustDate(t, "2026-05-01"), mustDate(t, "2026-05-10"))
	require.NoError(t, err)

	t.Run("range covering a single-date rule intersects", func(t *testing.T) {
		assert.True(t, april.Intersects(dayOff))
		assert.True(t, dayOff.Intersects(april))
	})

	t.Run("disjoint ranges do not intersect", func(t *testing.T) {
		assert.False(t, april.Intersects(may))
		assert.False(t, may.Intersects(april))
	})

	t.Run("ranges sharing only a boundary date intersect", func(t *testing.T) {
		touching, err := schedule.NewRangeOffRule(mustDate(t, "2026-04-20"), mustDate(t, "2026-04-25"))
		require.NoError(t, err)
		assert.True(t, april.Intersects(touching))
	})

	t.Run("two single-date rules on different days do not intersect", func(t *testing.T) {
		other := schedule.NewDayOffRule(mustDate(t, "2026-04-16"))
		assert.False(t, dayOff.Intersects(other))
	})
}
