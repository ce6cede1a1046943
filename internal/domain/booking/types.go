package booking

type Status string

const (
	StatusAwaitingConfirmation Status = "awaiting_confirmation"
	StatusConfirmed            Status = "confirmed"
	StatusCancelled            Status = "cancelled"
	StatusRejected             Status = "rejected"
	StatusCompleted            Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingConfirmation, StatusConfirmed, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// BlocksSlot reports whether a booking in this status occupies its time
// window for availability purposes. Cancelled, rejected and completed
// bookings never block a slot.
func (s Status) BlocksSlot() bool {
	return s == StatusAwaitingConfirmation || s == StatusConfirmed
}
