package request

import (
	"bookmarket/internal/usecase"
)

type TemplateDayRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsActive  bool   `json:"is_active"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type ReplaceWorkingHoursRequest struct {
	Days []TemplateDayRequest `json:"days" binding:"required"`
}

func (r ReplaceWorkingHoursRequest) ToInputs() []usecase.TemplateDayInput {
	inputs := make([]usecase.TemplateDayInput, 0, len(r.Days))
	for _, d := range r.Days {
		inputs = append(inputs, usecase.TemplateDayInput{
			Weekday:   d.Weekday,
			IsActive:  d.IsActive,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}
	return inputs
}

type CalendarRuleRequest struct {
	Kind      string `json:"kind" binding:"required"`
	Date      string `json:"date,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

func (r CalendarRuleRequest) ToInput() usecase.CalendarRuleInput {
	return usecase.CalendarRuleInput{
		Kind:      r.Kind,
		Date:      r.Date,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type WeeklyShiftRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsClosed  bool   `json:"is_closed"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type ReplaceStaffAvailabilityRequest struct {
	Shifts []WeeklyShiftRequest `json:"shifts" binding:"required"`
}

func (r ReplaceStaffAvailabilityRequest) ToInputs() []usecase.WeeklyShiftInput {
	inputs := make([]usecase.WeeklyShiftInput, 0, len(r.Shifts))
	for _, s := range r.Shifts {
		inputs = append(inputs, usecase.WeeklyShiftInput{
			Weekday:   s.Weekday,
			IsClosed:  s.IsClosed,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return inputs
}

type StaffExceptionRequest struct {
	Date     string `json:"date" binding:"required"`
	IsClosed bool   `json:"is_closed"`
	Reason   string `json:"reason,omitempty"`
}

func (r StaffExceptionRequest) ToInput() usecase.StaffExceptionInput {
	return usecase.StaffExceptionInput{
		Date:     r.Date,
		IsClosed: r.IsClosed,
		Reason:   r.Reason,
	}
}
