package readmodel

import (
	"bookmarket/internal/domain/schedule"

	"github.com/google/uuid"
)

// BusinessScheduleRM carries everything needed to resolve a business's
// effective hours: the weekly template plus its calendar rules, already
// converted to domain types at the infra boundary.
type BusinessScheduleRM struct {
	BusinessID uuid.UUID
	Template   []schedule.TemplateDay
	Rules      []schedule.CalendarRule
}

// CalendarRuleRM is one stored calendar rule with its row id, as listed
// to the owning business. Fields not used by the rule's kind stay empty.
type CalendarRuleRM struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Date      string    `json:"date,omitempty"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
}

// StaffProfileRM identifies a staff row for authorization on the staff
// schedule write routes: which business it belongs to and which user
// account, if any, it is linked to.
type StaffProfileRM struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	UserID     *uuid.UUID
	IsActive   bool
}

// StaffAgendaRM is one eligible staff member's schedule state for a
// target date: weekly availability, date exceptions, and the busy
// intervals of their active bookings that day. The readstore loads all
// agendas for a (business, service, date) in batched queries, one per
// concern, never one per staff.
type StaffAgendaRM struct {
	StaffID    uuid.UUID
	Name       string
	Weekly     []schedule.WeeklyShift
	Exceptions []schedule.StaffException
	Busy       []schedule.BusyInterval
}
