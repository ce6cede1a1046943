package readstore

import (
	"context"
	"errors"
	"time"

	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/infra"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffAgendaReadStore struct {
	pool *pgxpool.Pool
}

func NewStaffAgendaReadStore(pool *pgxpool.Pool) *StaffAgendaReadStore {
	return &StaffAgendaReadStore{pool: pool}
}

// EligibleAgendas loads the full schedule state for every active staff
// member assigned to the service: one query for the staff set, then one
// batched query per concern with staff_id = ANY(...). Never one query
// per staff member.
func (r *StaffAgendaReadStore) EligibleAgendas(ctx context.Context, businessID, serviceID uuid.UUID, date schedule.Date) ([]readmodel.StaffAgendaRM, error) {
	const staffQuery = `
		SELECT s.id, s.name
		FROM staff s
		JOIN service_staff ss ON ss.staff_id = s.id
		WHERE ss.service_id = $1 AND s.business_id = $2 AND s.is_active
		ORDER BY s.id
	`

	rows, err := r.pool.Query(ctx, staffQuery, serviceID, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load eligible staff", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*readmodel.StaffAgendaRM)
	var order []uuid.UUID
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff row", err)
		}
		byID[id] = &readmodel.StaffAgendaRM{StaffID: id, Name: name}
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff rows", err)
	}

	if len(order) == 0 {
		return nil, nil
	}

	if err := r.loadWeekly(ctx, order, byID); err != nil {
		return nil, err
	}
	if err := r.loadExceptions(ctx, order, date, byID); err != nil {
		return nil, err
	}
	if err := r.loadBusyIntervals(ctx, order, date, byID); err != nil {
		return nil, err
	}

	agendas := make([]readmodel.StaffAgendaRM, 0, len(order))
	for _, id := range order {
		agendas = append(agendas, *byID[id])
	}
	return agendas, nil
}

func (r *StaffAgendaReadStore) Profile(ctx context.Context, staffID uuid.UUID) (*readmodel.StaffProfileRM, error) {
	const query = `
		SELECT id, business_id, user_id, is_active
		FROM staff
		WHERE id = $1
	`

	var rm readmodel.StaffProfileRM
	err := r.pool.QueryRow(ctx, query, staffID).Scan(&rm.ID, &rm.BusinessID, &rm.UserID, &rm.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load staff profile", err)
	}

	return &rm, nil
}

func (r *StaffAgendaReadStore) loadWeekly(ctx context.Context, staffIDs []uuid.UUID, byID map[uuid.UUID]*readmodel.StaffAgendaRM) error {
	const query = `
		SELECT staff_id, weekday, is_closed, start_minute, end_minute
		FROM staff_availability
		WHERE staff_id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, staffIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to load staff availability", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			staffID    uuid.UUID
			weekday    int16
			closed     bool
			start, end int16
		)
		if err := rows.Scan(&staffID, &weekday, &closed, &start, &end); err != nil {
			return infra.WrapRepoErr("failed to scan staff availability row", err)
		}
		if agenda, ok := byID[staffID]; ok {
			agenda.Weekly = append(agenda.Weekly, schedule.WeeklyShift{
				Weekday: schedule.Weekday(weekday),
				Closed:  closed,
				Start:   schedule.MinuteOfDay(start),
				End:     schedule.MinuteOfDay(end),
			})
		}
	}
	return infra.WrapRowsErr(rows.Err(), "failed to iterate staff availability rows")
}

func (r *StaffAgendaReadStore) loadExceptions(ctx context.Context, staffIDs []uuid.UUID, date schedule.Date, byID map[uuid.UUID]*readmodel.StaffAgendaRM) error {
	const query = `
		SELECT staff_id, date, is_closed, reason
		FROM staff_exceptions
		WHERE staff_id = ANY($1) AND date = $2
	`

	rows, err := r.pool.Query(ctx, query, staffIDs, date.Time())
	if err != nil {
		return infra.WrapRepoErr("failed to load staff exceptions", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			staffID uuid.UUID
			day     time.Time
			closed  bool
			reason  string
		)
		if err := rows.Scan(&staffID, &day, &closed, &reason); err != nil {
			return infra.WrapRepoErr("failed to scan staff exception row", err)
		}
		if agenda, ok := byID[staffID]; ok {
			agenda.Exceptions = append(agenda.Exceptions, schedule.StaffException{
				Date:   schedule.DateOf(day),
				Closed: closed,
				Reason: reason,
			})
		}
	}
	return infra.WrapRowsErr(rows.Err(), "failed to iterate staff exception rows")
}

func (r *StaffAgendaReadStore) loadBusyIntervals(ctx context.Context, staffIDs []uuid.UUID, date schedule.Date, byID map[uuid.UUID]*readmodel.StaffAgendaRM) error {
	// Only statuses that block a slot participate in conflict indexing.
	const query = `
		SELECT staff_id, start_minute, end_minute
		FROM bookings
		WHERE staff_id = ANY($1) AND date = $2
		  AND status IN ('awaiting_confirmation', 'confirmed')
	`

	rows, err := r.pool.Query(ctx, query, staffIDs, date.Time())
	if err != nil {
		return infra.WrapRepoErr("failed to load active bookings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			staffID    uuid.UUID
			start, end int16
		)
		if err := rows.Scan(&staffID, &start, &end); err != nil {
			return infra.WrapRepoErr("failed to scan booking row", err)
		}
		if agenda, ok := byID[staffID]; ok {
			agenda.Busy = append(agenda.Busy, schedule.BusyInterval{
				Start: schedule.MinuteOfDay(start),
				End:   schedule.MinuteOfDay(end),
			})
		}
	}
	return infra.WrapRowsErr(rows.Err(), "failed to iterate booking rows")
}
