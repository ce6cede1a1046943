package usecase

import (
	"context"
	"errors"
	"fmt"

	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/metrics"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrServiceNotFound  = errors.New("service not found")
	ErrScheduleCorrupt  = errors.New("conflicting calendar rules")
	ErrDataAccessFailed = errors.New("data access failed")
)

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error)
}

type BusinessScheduleReader interface {
	Schedule(ctx context.Context, businessID uuid.UUID) (*readmodel.BusinessScheduleRM, error)
}

// StaffAgendaReader loads the schedule state of every staff member
// eligible for a service on a date. Implementations must batch: one
// query per concern across all eligible staff, not one per staff.
type StaffAgendaReader interface {
	EligibleAgendas(ctx context.Context, businessID, serviceID uuid.UUID, date schedule.Date) ([]readmodel.StaffAgendaRM, error)
}

// AvailabilityCache is a best-effort slot cache. Implementations must
// degrade silently: a miss and a backend failure look the same to the
// caller.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) ([]schedule.Slot, bool)
	Set(ctx context.Context, key string, slots []schedule.Slot)
	Del(ctx context.Context, key string)
}

type AvailabilityUseCase interface {
	ResolveAvailableSlots(ctx context.Context, businessID, serviceID uuid.UUID, date string) ([]schedule.Slot, error)
}

type availabilityUseCaseImpl struct {
	services ServiceReader
	business BusinessScheduleReader
	staff    StaffAgendaReader
	cache    AvailabilityCache
}

func NewAvailabilityUseCase(
	services ServiceReader,
	business BusinessScheduleReader,
	staff StaffAgendaReader,
	cache AvailabilityCache,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		services: services,
		business: business,
		staff:    staff,
		cache:    cache,
	}
}

// ResolveAvailableSlots computes the bookable slots for (business,
// service, date) across all eligible staff.
//
// The pipeline is fetch once, then pure computation: business hours gate
// the date (a closed business yields no slots), each staff member's
// shift is resolved independently, candidates are generated against that
// staff's conflict index, and the per-staff contributions are aggregated
// into one sorted list. No staff eligible is a valid empty result, not
// an error; fetch failures are errors, never an empty result.
func (u *availabilityUseCaseImpl) ResolveAvailableSlots(ctx context.Context, businessID, serviceID uuid.UUID, date string) ([]schedule.Slot, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	cacheKey := availabilityCacheKey(businessID, serviceID, day)
	if cached, ok := u.cache.Get(ctx, cacheKey); ok {
		metrics.AvailabilityResolved("cache_hit", len(cached))
		return cached, nil
	}

	svc, err := u.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, translateStoreErr(err, ErrServiceNotFound)
	}
	if svc.BusinessID != businessID || !svc.IsActive {
		return nil, errs.Mark(errs.New("service does not belong to business or is inactive"), ErrServiceNotFound)
	}

	if svc.DurationMinutes <= 0 {
		// Degenerate duration: nothing can ever fit, and generating
		// candidates would produce malformed intervals.
		metrics.AvailabilityResolved("degenerate_duration", 0)
		return []schedule.Slot{}, nil
	}

	biz, err := u.business.Schedule(ctx, businessID)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}

	hours, err := schedule.ResolveBusinessHours(
		schedule.NewWeekTemplate(biz.Template),
		schedule.NewRuleIndex(biz.Rules),
		day,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleCorrupt)
	}
	if !hours.Open {
		metrics.AvailabilityResolved("business_closed", 0)
		return []schedule.Slot{}, nil
	}

	agendas, err := u.staff.EligibleAgendas(ctx, businessID, serviceID, day)
	if err != nil {
		return nil, translateStoreErr(err, ErrDataAccessFailed)
	}

	contributions := make([][]schedule.MinuteOfDay, 0, len(agendas))
	for _, agenda := range agendas {
		shift := schedule.NewStaffWeek(agenda.Weekly, agenda.Exceptions).ResolveStaffShift(day)
		if !shift.Open {
			continue
		}
		conflicts := schedule.NewConflictIndex(agenda.Busy)
		contributions = append(contributions, schedule.GenerateSlots(shift, svc.DurationMinutes, conflicts))
	}

	slots := schedule.AggregateSlots(contributions)
	metrics.AvailabilityResolved("computed", len(slots))

	u.cache.Set(ctx, cacheKey, slots)
	return slots, nil
}

func availabilityCacheKey(businessID, serviceID uuid.UUID, day schedule.Date) string {
	return fmt.Sprintf("avail:%s:%s:%s", businessID, serviceID, day.ISO())
}
