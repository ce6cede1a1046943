package response

import (
	"bookmarket/internal/domain/schedule"
)

type SlotResponse struct {
	Time       string `json:"time"`
	Status     string `json:"status"`
	StaffCount int    `json:"staff_count"`
}

type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlots(date string, slots []schedule.Slot) AvailabilityResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Time:       s.Time,
			Status:     string(s.Status),
			StaffCount: s.StaffCount,
		})
	}
	return AvailabilityResponse{Date: date, Slots: out}
}
