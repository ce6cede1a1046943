package response

import (
	"time"

	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StaffID     uuid.UUID `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:          rm.ID,
		BusinessID:  rm.BusinessID,
		ServiceID:   rm.ServiceID,
		ServiceName: rm.ServiceName,
		StaffID:     rm.StaffID,
		StaffName:   rm.StaffName,
		Date:        rm.Date,
		StartTime:   rm.StartTime,
		EndTime:     rm.EndTime,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
