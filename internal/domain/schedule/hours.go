package schedule

// DayHours is the effective open interval for a business or a staff
// member on one date, after overlaying exceptions on defaults.
type DayHours struct {
	Open  bool
	Start MinuteOfDay
	End   MinuteOfDay
}

func Closed() DayHours {
	return DayHours{}
}

func OpenHours(start, end MinuteOfDay) DayHours {
	return DayHours{Open: true, Start: start, End: end}
}

// TemplateDay is one weekday entry of a business's default recurring
// schedule. The template is always replaced wholesale, seven rows at a
// time, so a missing entry means the data is incomplete and the day is
// treated as closed.
type TemplateDay struct {
	Weekday Weekday
	Active  bool
	Start   MinuteOfDay
	End     MinuteOfDay
}

// WeekTemplate indexes template entries by Saturday-first weekday.
type WeekTemplate map[Weekday]TemplateDay

func NewWeekTemplate(days []TemplateDay) WeekTemplate {
	tpl := make(WeekTemplate, len(days))
	for _, d := range days {
		tpl[d.Weekday] = d
	}
	return tpl
}

// ResolveBusinessHours computes the business's effective hours for a date
// by overlaying calendar rules on the weekly template.
//
// An off-rule matching the date closes the business regardless of the
// template; a custom-rule opens it with the rule's hours regardless of
// the template; with no matching rule the template entry for the mapped
// weekday decides. Missing or inactive template entries resolve to
// closed, never open.
func ResolveBusinessHours(tpl WeekTemplate, rules *RuleIndex, date Date) (DayHours, error) {
	rule, ok, err := rules.RuleFor(date)
	if err != nil {
		return Closed(), err
	}
	if ok {
		if rule.closes() {
			return Closed(), nil
		}
		start, end := rule.Hours()
		return OpenHours(start, end), nil
	}

	day, ok := tpl[WeekdayOf(date)]
	if !ok || !day.Active {
		return Closed(), nil
	}
	return OpenHours(day.Start, day.End), nil
}
