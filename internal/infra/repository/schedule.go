package repository

import (
	"context"
	"time"

	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/infra"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// ReplaceTemplate swaps all seven weekday rows in one transaction so a
// concurrent availability read never sees a partial template.
func (r *ScheduleRepository) ReplaceTemplate(ctx context.Context, businessID uuid.UUID, days []schedule.TemplateDay) error {
	return r.inTx(ctx, "failed to replace working hour template", func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM working_hour_templates WHERE business_id = $1`, businessID); err != nil {
			return err
		}

		const insert = `
			INSERT INTO working_hour_templates (business_id, weekday, is_active, start_minute, end_minute)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, d := range days {
			var start, end int16
			if d.Active {
				start, end = int16(d.Start), int16(d.End)
			}
			if _, err := tx.Exec(ctx, insert, businessID, int16(d.Weekday), d.Active, start, end); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) AddCalendarRule(ctx context.Context, businessID uuid.UUID, rule schedule.CalendarRule) (uuid.UUID, error) {
	const query = `
		INSERT INTO calendar_rules (id, business_id, kind, date, start_date, end_date, start_minute, end_minute)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	id := uuid.New()
	var (
		date, from, to   *time.Time
		startMin, endMin *int16
	)
	switch rule.Kind() {
	case schedule.RuleDayOff:
		date = timePtr(rule.Date())
	case schedule.RuleCustomDay:
		date = timePtr(rule.Date())
		startMin, endMin = minutePtrs(rule)
	case schedule.RuleRangeOff:
		from, to = timePtr(rule.StartDate()), timePtr(rule.EndDate())
	case schedule.RuleRangeCustom:
		from, to = timePtr(rule.StartDate()), timePtr(rule.EndDate())
		startMin, endMin = minutePtrs(rule)
	}

	_, err := r.pool.Exec(ctx, query, id, businessID, string(rule.Kind()), date, from, to, startMin, endMin)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert calendar rule", err, storeKind(err))
	}
	return id, nil
}

func (r *ScheduleRepository) ListCalendarRules(ctx context.Context, businessID uuid.UUID) ([]readmodel.CalendarRuleRM, error) {
	const query = `
		SELECT id, kind, date, start_date, end_date, start_minute, end_minute
		FROM calendar_rules
		WHERE business_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar rules", err)
	}
	defer rows.Close()

	rules := make([]readmodel.CalendarRuleRM, 0)
	for rows.Next() {
		var (
			rm               readmodel.CalendarRuleRM
			date, from, to   *time.Time
			startMin, endMin *int16
		)
		if err := rows.Scan(&rm.ID, &rm.Kind, &date, &from, &to, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar rule", err)
		}
		if date != nil {
			rm.Date = schedule.DateOf(*date).ISO()
		}
		if from != nil {
			rm.StartDate = schedule.DateOf(*from).ISO()
		}
		if to != nil {
			rm.EndDate = schedule.DateOf(*to).ISO()
		}
		if startMin != nil {
			rm.StartTime = schedule.MinuteOfDay(*startMin).String()
		}
		if endMin != nil {
			rm.EndTime = schedule.MinuteOfDay(*endMin).String()
		}
		rules = append(rules, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar rules", err)
	}
	return rules, nil
}

func (r *ScheduleRepository) DeleteCalendarRule(ctx context.Context, businessID, ruleID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM calendar_rules WHERE id = $1 AND business_id = $2`, ruleID, businessID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete calendar rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("calendar rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) ReplaceStaffWeek(ctx context.Context, staffID uuid.UUID, shifts []schedule.WeeklyShift) error {
	return r.inTx(ctx, "failed to replace staff availability", func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM staff_availability WHERE staff_id = $1`, staffID); err != nil {
			return err
		}

		const insert = `
			INSERT INTO staff_availability (staff_id, weekday, is_closed, start_minute, end_minute)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, s := range shifts {
			var start, end int16
			if !s.Closed {
				start, end = int16(s.Start), int16(s.End)
			}
			if _, err := tx.Exec(ctx, insert, staffID, int16(s.Weekday), s.Closed, start, end); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddStaffException upserts: re-submitting a date replaces the previous
// exception for it.
func (r *ScheduleRepository) AddStaffException(ctx context.Context, staffID uuid.UUID, exc schedule.StaffException) error {
	const query = `
		INSERT INTO staff_exceptions (staff_id, date, is_closed, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, date)
		DO UPDATE SET is_closed = EXCLUDED.is_closed, reason = EXCLUDED.reason
	`

	if _, err := r.pool.Exec(ctx, query, staffID, exc.Date.Time(), exc.Closed, exc.Reason); err != nil {
		return infra.WrapRepoErr("failed to upsert staff exception", err, storeKind(err))
	}
	return nil
}

func (r *ScheduleRepository) inTx(ctx context.Context, msg string, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return infra.WrapRepoErr(msg, err, storeKind(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	return nil
}

func timePtr(d schedule.Date) *time.Time {
	t := d.Time()
	return &t
}

func minutePtrs(rule schedule.CalendarRule) (*int16, *int16) {
	start, end := rule.Hours()
	s, e := int16(start), int16(end)
	return &s, &e
}
