package usecase

import (
	"context"
	"errors"

	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/domain/user"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidTemplate = errors.New("invalid working hour template")
	ErrInvalidRule     = errors.New("invalid calendar rule")
	ErrRuleOverlap     = errors.New("calendar rule overlaps an existing rule")
	ErrRuleNotFound    = errors.New("calendar rule not found")
	ErrStaffNotFound   = errors.New("staff member not found")
)

type ScheduleRepository interface {
	ReplaceTemplate(ctx context.Context, businessID uuid.UUID, days []schedule.TemplateDay) error
	AddCalendarRule(ctx context.Context, businessID uuid.UUID, rule schedule.CalendarRule) (uuid.UUID, error)
	ListCalendarRules(ctx context.Context, businessID uuid.UUID) ([]readmodel.CalendarRuleRM, error)
	DeleteCalendarRule(ctx context.Context, businessID, ruleID uuid.UUID) error
	ReplaceStaffWeek(ctx context.Context, staffID uuid.UUID, shifts []schedule.WeeklyShift) error
	AddStaffException(ctx context.Context, staffID uuid.UUID, exc schedule.StaffException) error
}

// StaffDirectory resolves staff identity for authorization on the staff
// schedule write routes.
type StaffDirectory interface {
	Profile(ctx context.Context, staffID uuid.UUID) (*readmodel.StaffProfileRM, error)
}

// TemplateDayInput is one weekday row as submitted by the owner UI.
type TemplateDayInput struct {
	Weekday   int
	IsActive  bool
	StartTime string
	EndTime   string
}

type CalendarRuleInput struct {
	Kind      string
	Date      string
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
}

type WeeklyShiftInput struct {
	Weekday   int
	IsClosed  bool
	StartTime string
	EndTime   string
}

type StaffExceptionInput struct {
	Date     string
	IsClosed bool
	Reason   string
}

type EffectiveHours struct {
	Date      string `json:"date"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type ScheduleUseCase interface {
	GetEffectiveHours(ctx context.Context, businessID uuid.UUID, date string) (*EffectiveHours, error)
	ReplaceWorkingHours(ctx context.Context, businessID uuid.UUID, days []TemplateDayInput) error
	AddCalendarRule(ctx context.Context, businessID uuid.UUID, input CalendarRuleInput) (uuid.UUID, error)
	ListCalendarRules(ctx context.Context, businessID uuid.UUID) ([]readmodel.CalendarRuleRM, error)
	DeleteCalendarRule(ctx context.Context, businessID, ruleID uuid.UUID) error
	ReplaceStaffAvailability(ctx context.Context, actor *readmodel.AuthorizedUserRM, staffID uuid.UUID, shifts []WeeklyShiftInput) error
	AddStaffException(ctx context.Context, actor *readmodel.AuthorizedUserRM, staffID uuid.UUID, input StaffExceptionInput) error
}

type scheduleUseCaseImpl struct {
	repo     ScheduleRepository
	business BusinessScheduleReader
	staff    StaffDirectory
}

func NewScheduleUseCase(repo ScheduleRepository, business BusinessScheduleReader, staff StaffDirectory) ScheduleUseCase {
	return &scheduleUseCaseImpl{repo: repo, business: business, staff: staff}
}

func (u *scheduleUseCaseImpl) GetEffectiveHours(ctx context.Context, businessID uuid.UUID, date string) (*EffectiveHours, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	biz, err := u.business.Schedule(ctx, businessID)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}

	hours, err := schedule.ResolveBusinessHours(schedule.NewWeekTemplate(biz.Template), schedule.NewRuleIndex(biz.Rules), day)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleCorrupt)
	}

	out := &EffectiveHours{Date: day.ISO(), IsOpen: hours.Open}
	if hours.Open {
		out.StartTime = hours.Start.String()
		out.EndTime = hours.End.String()
	}
	return out, nil
}

// ReplaceWorkingHours swaps the template wholesale: exactly one row per
// weekday, all seven present.
func (u *scheduleUseCaseImpl) ReplaceWorkingHours(ctx context.Context, businessID uuid.UUID, days []TemplateDayInput) error {
	if len(days) != 7 {
		return errs.Mark(errs.New("template must contain exactly 7 entries"), ErrInvalidTemplate)
	}

	converted := make([]schedule.TemplateDay, 0, 7)
	seen := make(map[schedule.Weekday]bool, 7)
	for _, d := range days {
		w := schedule.Weekday(d.Weekday)
		if !w.Valid() || seen[w] {
			return errs.Mark(errs.New("duplicate or out-of-range weekday"), ErrInvalidTemplate)
		}
		seen[w] = true

		day := schedule.TemplateDay{Weekday: w, Active: d.IsActive}
		if d.IsActive {
			start, end, err := parseHourPair(d.StartTime, d.EndTime)
			if err != nil {
				return errs.Mark(err, ErrInvalidTemplate)
			}
			day.Start, day.End = start, end
		}
		converted = append(converted, day)
	}

	return translateStoreErr(u.repo.ReplaceTemplate(ctx, businessID, converted), ErrDataAccessFailed)
}

// AddCalendarRule validates the rule and rejects any overlap with the
// business's stored rules, so per-date ambiguity cannot be created
// through this path. Concurrent inserts can still race past the check;
// the per-date resolver reports such data as conflicting on read.
func (u *scheduleUseCaseImpl) AddCalendarRule(ctx context.Context, businessID uuid.UUID, input CalendarRuleInput) (uuid.UUID, error) {
	rule, err := buildRule(input)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRule)
	}

	biz, err := u.business.Schedule(ctx, businessID)
	if err != nil {
		return uuid.Nil, translateStoreErr(err, ErrDataAccessFailed)
	}
	for _, existing := range biz.Rules {
		if rule.Intersects(existing) {
			return uuid.Nil, errs.Mark(errs.New("rule dates already covered by another rule"), ErrRuleOverlap)
		}
	}

	id, err := u.repo.AddCalendarRule(ctx, businessID, rule)
	if err != nil {
		return uuid.Nil, translateStoreErr(err, ErrDataAccessFailed)
	}
	return id, nil
}

func (u *scheduleUseCaseImpl) ListCalendarRules(ctx context.Context, businessID uuid.UUID) ([]readmodel.CalendarRuleRM, error) {
	rules, err := u.repo.ListCalendarRules(ctx, businessID)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}
	return rules, nil
}

func (u *scheduleUseCaseImpl) DeleteCalendarRule(ctx context.Context, businessID, ruleID uuid.UUID) error {
	return translateStoreErr(u.repo.DeleteCalendarRule(ctx, businessID, ruleID), ErrRuleNotFound)
}

func (u *scheduleUseCaseImpl) ReplaceStaffAvailability(ctx context.Context, actor *readmodel.AuthorizedUserRM, staffID uuid.UUID, shifts []WeeklyShiftInput) error {
	if err := u.authorizeStaffWrite(ctx, actor, staffID); err != nil {
		return err
	}
	if len(shifts) != 7 {
		return errs.Mark(errs.New("weekly availability must contain exactly 7 entries"), ErrInvalidTemplate)
	}

	converted := make([]schedule.WeeklyShift, 0, 7)
	seen := make(map[schedule.Weekday]bool, 7)
	for _, s := range shifts {
		w := schedule.Weekday(s.Weekday)
		if !w.Valid() || seen[w] {
			return errs.Mark(errs.New("duplicate or out-of-range weekday"), ErrInvalidTemplate)
		}
		seen[w] = true

		shift := schedule.WeeklyShift{Weekday: w, Closed: s.IsClosed}
		if !s.IsClosed {
			start, end, err := parseHourPair(s.StartTime, s.EndTime)
			if err != nil {
				return errs.Mark(err, ErrInvalidTemplate)
			}
			shift.Start, shift.End = start, end
		}
		converted = append(converted, shift)
	}

	return translateStoreErr(u.repo.ReplaceStaffWeek(ctx, staffID, converted), ErrStaffNotFound)
}

func (u *scheduleUseCaseImpl) AddStaffException(ctx context.Context, actor *readmodel.AuthorizedUserRM, staffID uuid.UUID, input StaffExceptionInput) error {
	if err := u.authorizeStaffWrite(ctx, actor, staffID); err != nil {
		return err
	}

	day, err := schedule.ParseDate(input.Date)
	if err != nil {
		return errs.Mark(err, ErrInvalidDate)
	}

	return translateStoreErr(u.repo.AddStaffException(ctx, staffID, schedule.StaffException{
		Date:   day,
		Closed: input.IsClosed,
		Reason: input.Reason,
	}), ErrStaffNotFound)
}

// authorizeStaffWrite restricts staff schedule writes to the staff
// member's own business: owners may edit any staff row of their
// business, staff only the row linked to their own account.
func (u *scheduleUseCaseImpl) authorizeStaffWrite(ctx context.Context, actor *readmodel.AuthorizedUserRM, staffID uuid.UUID) error {
	profile, err := u.staff.Profile(ctx, staffID)
	if err != nil {
		return translateStoreErr(err, ErrStaffNotFound)
	}
	if actor.BusinessID == nil || *actor.BusinessID != profile.BusinessID {
		return errs.Mark(errs.New("staff belongs to another business"), ErrForbidden)
	}
	if actor.Role == user.RoleStaff.String() && (profile.UserID == nil || *profile.UserID != actor.ID) {
		return errs.Mark(errs.New("staff may only edit their own schedule"), ErrForbidden)
	}
	return nil
}

func parseHourPair(startStr, endStr string) (schedule.MinuteOfDay, schedule.MinuteOfDay, error) {
	start, err := schedule.ParseClock(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := schedule.ParseClock(endStr)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, errs.New("end time must be after start time")
	}
	return start, end, nil
}

func buildRule(input CalendarRuleInput) (schedule.CalendarRule, error) {
	switch schedule.RuleKind(input.Kind) {
	case schedule.RuleDayOff:
		day, err := schedule.ParseDate(input.Date)
		if err != nil {
			return schedule.CalendarRule{}, err
		}
		return schedule.NewDayOffRule(day), nil

	case schedule.RuleCustomDay:
		day, err := schedule.ParseDate(input.Date)
		if err != nil {
			return schedule.CalendarRule{}, err
		}
		start, end, err := parseHourPair(input.StartTime, input.EndTime)
		if err != nil {
			return schedule.CalendarRule{}, err
		}
		return schedule.NewCustomDayRule(day, start, end)

	case schedule.RuleRangeOff:
		from, to, err := parseDatePair(input.StartDate, input.EndDate)
		if err != nil {
			return schedule.CalendarRule{}, err
		}
		return schedule.NewRangeOffRule(from, to)

	case schedule.RuleRangeCustom:
		from, to, err := parseDatePair(input.StartDate, input.EndDate)
		if err != nil {
			return schedule.CalendarRule{}, err
		}
		start, end, err := parseHourPair(input.StartTime, input.EndTime)
		if err != nil {
			return schedule.CalendarRule{}, err
		}
		return schedule.NewRangeCustomRule(from, to, start, end)

	default:
		return schedule.CalendarRule{}, schedule.ErrInvalidRule
	}
}

func parseDatePair(fromStr, toStr string) (schedule.Date, schedule.Date, error) {
	from, err := schedule.ParseDate(fromStr)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	to, err := schedule.ParseDate(toStr)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	return from, to, nil
}
