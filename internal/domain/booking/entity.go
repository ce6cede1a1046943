package booking

import (
	"errors"
	"time"

	"bookmarket/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval   = errors.New("booking end must be after start")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrAlreadyFinalized  = errors.New("booking is already finalized")
	ErrNotAwaitingReview = errors.New("booking is not awaiting confirmation")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Booking struct {
	id         uuid.UUID
	businessID uuid.UUID
	serviceID  uuid.UUID
	staffID    uuid.UUID
	customerID uuid.UUID
	date       schedule.Date
	start      schedule.MinuteOfDay
	end        schedule.MinuteOfDay
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a booking awaiting owner confirmation. Slot-level
// availability is the usecase's responsibility; the entity only enforces
// interval sanity.
func NewBooking(businessID, serviceID, staffID, customerID uuid.UUID, date schedule.Date, start, end schedule.MinuteOfDay) (*Booking, error) {
	if end <= start || !start.Valid() || !end.Valid() {
		return nil, ErrInvalidInterval
	}

	return &Booking{
		id:         uuid.New(),
		businessID: businessID,
		serviceID:  serviceID,
		staffID:    staffID,
		customerID: customerID,
		date:       date,
		start:      start,
		end:        end,
		status:     StatusAwaitingConfirmation,
	}, nil
}

func ReconstructBooking(
	id, businessID, serviceID, staffID, customerID uuid.UUID,
	date schedule.Date,
	start, end schedule.MinuteOfDay,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		businessID: businessID,
		serviceID:  serviceID,
		staffID:    staffID,
		customerID: customerID,
		date:       date,
		start:      start,
		end:        end,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel is the customer-side terminal action. Any still-blocking booking
// may be cancelled; finalized ones may not.
func (b *Booking) Cancel() error {
	if !b.status.BlocksSlot() {
		return ErrAlreadyFinalized
	}
	b.status = StatusCancelled
	return nil
}

// Confirm and Reject are the owner-side decisions over a pending booking.
func (b *Booking) Confirm() error {
	if b.status != StatusAwaitingConfirmation {
		return ErrNotAwaitingReview
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) Reject() error {
	if b.status != StatusAwaitingConfirmation {
		return ErrNotAwaitingReview
	}
	b.status = StatusRejected
	return nil
}

func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) Blocks() bool {
	return b.status.BlocksSlot()
}

// Interval returns the occupied window for conflict indexing.
func (b *Booking) Interval() schedule.BusyInterval {
	return schedule.BusyInterval{Start: b.start, End: b.end}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) BusinessID() uuid.UUID       { return b.businessID }
func (b *Booking) ServiceID() uuid.UUID        { return b.serviceID }
func (b *Booking) StaffID() uuid.UUID          { return b.staffID }
func (b *Booking) CustomerID() uuid.UUID       { return b.customerID }
func (b *Booking) Date() schedule.Date         { return b.date }
func (b *Booking) Start() schedule.MinuteOfDay { return b.start }
func (b *Booking) End() schedule.MinuteOfDay   { return b.end }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
