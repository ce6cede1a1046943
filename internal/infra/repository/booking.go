package repository

import (
	"context"
	"errors"
	"time"

	"bookmarket/internal/domain/booking"
	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/infra"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingViewColumns = `
	b.id, b.business_id, b.service_id, sv.name, b.staff_id, st.name,
	b.customer_id, b.date, b.start_minute, b.end_minute, b.status,
	b.created_at, b.updated_at
`

// Create inserts the booking. The partial unique index on
// (staff_id, date, start_minute) over blocking statuses is the final
// arbiter against concurrent double-booking: its violation surfaces as
// KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	const query = `
		INSERT INTO bookings (
			id, business_id, service_id, staff_id, customer_id,
			date, start_minute, end_minute, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID(), b.BusinessID(), b.ServiceID(), b.StaffID(), b.CustomerID(),
		b.Date().Time(), int16(b.Start()), int16(b.End()), string(b.Status()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
			case pgForeignKeyViolation:
				return nil, infra.WrapRepoErr("booking references missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	return r.ViewByID(ctx, b.ID())
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, business_id, service_id, staff_id, customer_id,
		       date, start_minute, end_minute, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var (
		bookingID, businessID, serviceID uuid.UUID
		staffID, customerID              uuid.UUID
		day                              time.Time
		start, end                       int16
		status                           string
		createdAt, updatedAt             time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bookingID, &businessID, &serviceID, &staffID, &customerID,
		&day, &start, &end, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	return booking.ReconstructBooking(
		bookingID, businessID, serviceID, staffID, customerID,
		schedule.DateOf(day),
		schedule.MinuteOfDay(start), schedule.MinuteOfDay(end),
		booking.Status(status),
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) ViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN services sv ON sv.id = b.service_id
		JOIN staff st ON st.id = b.staff_id
		WHERE b.id = $1
	`

	rm, err := scanBookingView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking view", err)
	}
	return rm, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN services sv ON sv.id = b.service_id
		JOIN staff st ON st.id = b.staff_id
		WHERE b.customer_id = $1
		ORDER BY b.date DESC, b.start_minute DESC
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		out = append(out, rm)
	}
	return out, infra.WrapRowsErr(rows.Err(), "failed to iterate booking rows")
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error) {
	const query = `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, string(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return r.ViewByID(ctx, id)
}

func scanBookingView(row pgx.Row) (*readmodel.BookingRM, error) {
	var (
		rm         readmodel.BookingRM
		day        time.Time
		start, end int16
	)
	err := row.Scan(
		&rm.ID, &rm.BusinessID, &rm.ServiceID, &rm.ServiceName, &rm.StaffID, &rm.StaffName,
		&rm.CustomerID, &day, &start, &end, &rm.Status,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d := schedule.DateOf(day)
	rm.Date = d.ISO()
	rm.StartTime = schedule.MinuteOfDay(start).String()
	rm.EndTime = schedule.MinuteOfDay(end).String()
	return &rm, nil
}
