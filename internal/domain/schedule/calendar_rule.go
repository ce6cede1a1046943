package schedule

import "errors"

var (
	ErrInvalidRule      = errors.New("invalid calendar rule")
	ErrConflictingRules = errors.New("conflicting calendar rules for date")
)

// RuleKind discriminates the four calendar rule variants. Adding a kind
// requires extending the switch in effectiveHours; there is no generic
// fallthrough on purpose.
type RuleKind string

const (
	RuleDayOff      RuleKind = "DAY_OFF"
	RuleCustomDay   RuleKind = "CUSTOM_DAY"
	RuleRangeOff    RuleKind = "RANGE_OFF"
	RuleRangeCustom RuleKind = "RANGE_CUSTOM"
)

// CalendarRule is a date-scoped override of the weekly working-hour
// template. Exactly one variant's fields are meaningful, enforced by the
// per-kind constructors.
type CalendarRule struct {
	kind      RuleKind
	date      Date // DAY_OFF / CUSTOM_DAY
	startDate Date // RANGE_OFF / RANGE_CUSTOM
	endDate   Date
	start     MinuteOfDay // CUSTOM_DAY / RANGE_CUSTOM
	end       MinuteOfDay
}

func NewDayOffRule(date Date) CalendarRule {
	return CalendarRule{kind: RuleDayOff, date: date}
}

func NewCustomDayRule(date Date, start, end MinuteOfDay) (CalendarRule, error) {
	if !start.Valid() || !end.Valid() || start >= end {
		return CalendarRule{}, ErrInvalidRule
	}
	return CalendarRule{kind: RuleCustomDay, date: date, start: start, end: end}, nil
}

func NewRangeOffRule(from, to Date) (CalendarRule, error) {
	if to.Before(from) {
		return CalendarRule{}, ErrInvalidRule
	}
	return CalendarRule{kind: RuleRangeOff, startDate: from, endDate: to}, nil
}

func NewRangeCustomRule(from, to Date, start, end MinuteOfDay) (CalendarRule, error) {
	if to.Before(from) {
		return CalendarRule{}, ErrInvalidRule
	}
	if !start.Valid() || !end.Valid() || start >= end {
		return CalendarRule{}, ErrInvalidRule
	}
	return CalendarRule{kind: RuleRangeCustom, startDate: from, endDate: to, start: start, end: end}, nil
}

// ReconstructCalendarRule rebuilds a rule from stored columns without
// re-validating; the write path validated on creation.
func ReconstructCalendarRule(kind RuleKind, date, startDate, endDate Date, start, end MinuteOfDay) CalendarRule {
	return CalendarRule{kind: kind, date: date, startDate: startDate, endDate: endDate, start: start, end: end}
}

func (r CalendarRule) Kind() RuleKind { return r.kind }

func (r CalendarRule) Date() Date      { return r.date }
func (r CalendarRule) StartDate() Date { return r.startDate }
func (r CalendarRule) EndDate() Date   { return r.endDate }

func (r CalendarRule) Hours() (MinuteOfDay, MinuteOfDay) { return r.start, r.end }

// Matches reports whether the rule applies to the given date. Range
// bounds are inclusive on both ends.
func (r CalendarRule) Matches(d Date) bool {
	switch r.kind {
	case RuleDayOff, RuleCustomDay:
		return r.date.Equal(d)
	case RuleRangeOff, RuleRangeCustom:
		return d.Within(r.startDate, r.endDate)
	default:
		return false
	}
}

// span returns the inclusive date range the rule covers; single-date
// kinds cover exactly one day.
func (r CalendarRule) span() (Date, Date) {
	if r.kind == RuleDayOff || r.kind == RuleCustomDay {
		return r.date, r.date
	}
	return r.startDate, r.endDate
}

// Intersects reports whether any date is matched by both rules. The
// write path uses it to keep a business's stored rule set free of
// per-date ambiguity.
func (r CalendarRule) Intersects(other CalendarRule) bool {
	from1, to1 := r.span()
	from2, to2 := other.span()
	return !from1.After(to2) && !from2.After(to1)
}

// closes reports whether a matching rule closes the business outright.
func (r CalendarRule) closes() bool {
	return r.kind == RuleDayOff || r.kind == RuleRangeOff
}

// RuleIndex holds a business's calendar rules prepared for per-date
// resolution: single-date rules keyed by ISO date, range rules kept as a
// slice that is scanned once per resolution call (never per slot).
type RuleIndex struct {
	byDate map[string][]CalendarRule
	ranges []CalendarRule
}

func NewRuleIndex(rules []CalendarRule) *RuleIndex {
	idx := &RuleIndex{byDate: make(map[string][]CalendarRule, len(rules))}
	for _, r := range rules {
		switch r.kind {
		case RuleDayOff, RuleCustomDay:
			key := r.date.ISO()
			idx.byDate[key] = append(idx.byDate[key], r)
		case RuleRangeOff, RuleRangeCustom:
			idx.ranges = append(idx.ranges, r)
		}
	}
	return idx
}

// RuleFor returns the single rule in effect for a date. At most one rule
// may apply by construction; if the stored data violates that, the
// ambiguity is reported as ErrConflictingRules rather than resolved by an
// arbitrary pick.
func (idx *RuleIndex) RuleFor(d Date) (CalendarRule, bool, error) {
	var matched []CalendarRule
	matched = append(matched, idx.byDate[d.ISO()]...)
	for _, r := range idx.ranges {
		if r.Matches(d) {
			matched = append(matched, r)
		}
	}

	switch len(matched) {
	case 0:
		return CalendarRule{}, false, nil
	case 1:
		return matched[0], true, nil
	default:
		return CalendarRule{}, false, ErrConflictingRules
	}
}
