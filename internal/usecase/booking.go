package usecase

import (
	"context"
	"errors"

	"bookmarket/internal/domain/booking"
	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/pkg/clock"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/metrics"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidTime      = errors.New("invalid time")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrStaffNotEligible = errors.New("staff member is not eligible for this service")
	ErrSlotUnavailable  = errors.New("requested slot is not available")
	ErrBookingConflict  = errors.New("booking conflicts with an existing booking")
	ErrNotBookingOwner  = errors.New("booking belongs to another customer")
	ErrForbidden        = errors.New("operation not permitted for this user")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error)
}

type CreateBookingParams struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	StaffID    uuid.UUID
	CustomerID uuid.UUID
	Date       string
	StartTime  string
}

type DecideBookingParams struct {
	BookingID  uuid.UUID
	OwnerID    uuid.UUID
	BusinessID uuid.UUID
	Confirm    bool
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, actorID, id uuid.UUID) (*readmodel.BookingRM, error)
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error)
	CancelBooking(ctx context.Context, customerID, id uuid.UUID) (*readmodel.BookingRM, error)
	DecideBooking(ctx context.Context, params DecideBookingParams) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookings BookingRepository
	services ServiceReader
	business BusinessScheduleReader
	staff    StaffAgendaReader
	cache    AvailabilityCache
	clock    clock.Clock
}

func NewBookingUseCase(
	bookings BookingRepository,
	services ServiceReader,
	business BusinessScheduleReader,
	staff StaffAgendaReader,
	cache AvailabilityCache,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings: bookings,
		services: services,
		business: business,
		staff:    staff,
		cache:    cache,
		clock:    clk,
	}
}

// CreateBooking validates the requested slot against the live schedule
// state before persisting: the staff member must be eligible for the
// service, the business must be open on the date, and the requested
// start must be one of the slots the generator would offer for that
// staff member right now. The store-level conflict check remains the
// final arbiter under concurrency.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	day, err := schedule.ParseDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	start, err := schedule.ParseClock(params.StartTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTime)
	}
	if day.Before(schedule.DateOf(u.clock.Now())) {
		return nil, errs.Mark(errs.New("booking date already passed"), ErrSlotUnavailable)
	}

	svc, err := u.services.FindByID(ctx, params.ServiceID)
	if err != nil {
		return nil, translateStoreErr(err, ErrServiceNotFound)
	}
	if svc.BusinessID != params.BusinessID || !svc.IsActive || svc.DurationMinutes <= 0 {
		return nil, errs.Mark(errs.New("service unavailable for booking"), ErrServiceNotFound)
	}
	end := start + schedule.MinuteOfDay(svc.DurationMinutes)

	biz, err := u.business.Schedule(ctx, params.BusinessID)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}
	hours, err := schedule.ResolveBusinessHours(schedule.NewWeekTemplate(biz.Template), schedule.NewRuleIndex(biz.Rules), day)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleCorrupt)
	}
	if !hours.Open {
		return nil, errs.Mark(errs.New("business closed on requested date"), ErrSlotUnavailable)
	}

	agendas, err := u.staff.EligibleAgendas(ctx, params.BusinessID, params.ServiceID, day)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}
	agenda, ok := findAgenda(agendas, params.StaffID)
	if !ok {
		return nil, errs.Mark(errs.New("staff not assigned to service"), ErrStaffNotEligible)
	}

	shift := schedule.NewStaffWeek(agenda.Weekly, agenda.Exceptions).ResolveStaffShift(day)
	conflicts := schedule.NewConflictIndex(agenda.Busy)
	if !slotOffered(schedule.GenerateSlots(shift, svc.DurationMinutes, conflicts), start) {
		return nil, errs.Mark(errs.New("slot not in current availability"), ErrSlotUnavailable)
	}

	entity, err := booking.NewBooking(params.BusinessID, params.ServiceID, params.StaffID, params.CustomerID, day, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotUnavailable)
	}

	rm, err := u.bookings.Create(ctx, entity)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}

	u.invalidateSlots(ctx, entity)
	metrics.BookingCreated()
	return rm, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, actorID, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.bookings.ViewByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err, ErrBookingNotFound)
	}
	if rm.CustomerID != actorID {
		// Owners reach bookings through the decision endpoint; the read
		// endpoint is customer-scoped.
		return nil, errs.Mark(errs.New("booking not visible to actor"), ErrBookingNotFound)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}
	return rms, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, customerID, id uuid.UUID) (*readmodel.BookingRM, error) {
	entity, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err, ErrBookingNotFound)
	}
	if entity.CustomerID() != customerID {
		return nil, errs.Mark(errs.New("cancel by non-owner"), ErrNotBookingOwner)
	}
	if err := entity.Cancel(); err != nil {
		return nil, err
	}

	rm, err := u.bookings.UpdateStatus(ctx, id, entity.Status())
	if err != nil {
		return nil, translateStoreErr(err, ErrBookingNotFound)
	}

	u.invalidateSlots(ctx, entity)
	metrics.BookingCancelled()
	return rm, nil
}

func (u *bookingUseCaseImpl) DecideBooking(ctx context.Context, params DecideBookingParams) (*readmodel.BookingRM, error) {
	entity, err := u.bookings.FindByID(ctx, params.BookingID)
	if err != nil {
		return nil, translateStoreErr(err, ErrBookingNotFound)
	}
	if entity.BusinessID() != params.BusinessID {
		return nil, errs.Mark(errs.New("booking belongs to another business"), ErrForbidden)
	}

	decision := "reject"
	if params.Confirm {
		decision = "confirm"
		err = entity.Confirm()
	} else {
		err = entity.Reject()
	}
	if err != nil {
		return nil, err
	}

	rm, err := u.bookings.UpdateStatus(ctx, params.BookingID, entity.Status())
	if err != nil {
		return nil, translateStoreErr(err, ErrBookingNotFound)
	}

	u.invalidateSlots(ctx, entity)
	metrics.BookingDecided(decision)
	return rm, nil
}

// invalidateSlots drops the cached slot list the booking write just made
// stale. Readers recompute on the next request instead of serving the
// old list for the remaining TTL.
func (u *bookingUseCaseImpl) invalidateSlots(ctx context.Context, entity *booking.Booking) {
	u.cache.Del(ctx, availabilityCacheKey(entity.BusinessID(), entity.ServiceID(), entity.Date()))
}

func findAgenda(agendas []readmodel.StaffAgendaRM, staffID uuid.UUID) (readmodel.StaffAgendaRM, bool) {
	for _, a := range agendas {
		if a.StaffID == staffID {
			return a, true
		}
	}
	return readmodel.StaffAgendaRM{}, false
}

func slotOffered(offered []schedule.MinuteOfDay, start schedule.MinuteOfDay) bool {
	for _, s := range offered {
		if s == start {
			return true
		}
	}
	return false
}
