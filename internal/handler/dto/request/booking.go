package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	BusinessID uuid.UUID `json:"business_id" binding:"required"`
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	StaffID    uuid.UUID `json:"staff_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
}

type DecideBookingRequest struct {
	Decision string `json:"decision" binding:"required,oneof=confirm reject"`
}

func (r DecideBookingRequest) Confirmed() bool {
	return r.Decision == "confirm"
}
