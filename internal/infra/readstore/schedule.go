package readstore

import (
	"context"
	"time"

	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/infra"
	"bookmarket/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessScheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewBusinessScheduleReadStore(pool *pgxpool.Pool) *BusinessScheduleReadStore {
	return &BusinessScheduleReadStore{pool: pool}
}

// Schedule loads the weekly template and all calendar rules for a
// business in two queries. Minutes are stored as smallints so no clock
// string parsing happens on the read path.
func (r *BusinessScheduleReadStore) Schedule(ctx context.Context, businessID uuid.UUID) (*readmodel.BusinessScheduleRM, error) {
	const templateQuery = `
		SELECT weekday, is_active, start_minute, end_minute
		FROM working_hour_templates
		WHERE business_id = $1
		ORDER BY weekday
	`

	rows, err := r.pool.Query(ctx, templateQuery, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load working hour template", err)
	}
	defer rows.Close()

	rm := &readmodel.BusinessScheduleRM{BusinessID: businessID}
	for rows.Next() {
		var (
			weekday    int16
			active     bool
			start, end int16
		)
		if err := rows.Scan(&weekday, &active, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template row", err)
		}
		rm.Template = append(rm.Template, schedule.TemplateDay{
			Weekday: schedule.Weekday(weekday),
			Active:  active,
			Start:   schedule.MinuteOfDay(start),
			End:     schedule.MinuteOfDay(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate template rows", err)
	}

	rules, err := r.loadRules(ctx, businessID)
	if err != nil {
		return nil, err
	}
	rm.Rules = rules

	return rm, nil
}

func (r *BusinessScheduleReadStore) loadRules(ctx context.Context, businessID uuid.UUID) ([]schedule.CalendarRule, error) {
	const rulesQuery = `
		SELECT kind, date, start_date, end_date, start_minute, end_minute
		FROM calendar_rules
		WHERE business_id = $1
	`

	rows, err := r.pool.Query(ctx, rulesQuery, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load calendar rules", err)
	}
	defer rows.Close()

	var rules []schedule.CalendarRule
	for rows.Next() {
		var (
			kind             string
			date, from, to   *time.Time
			startMin, endMin *int16
		)
		if err := rows.Scan(&kind, &date, &from, &to, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar rule row", err)
		}
		rules = append(rules, schedule.ReconstructCalendarRule(
			schedule.RuleKind(kind),
			dateOrZero(date),
			dateOrZero(from),
			dateOrZero(to),
			minuteOrZero(startMin),
			minuteOrZero(endMin),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate calendar rule rows", err)
	}

	return rules, nil
}

func dateOrZero(t *time.Time) schedule.Date {
	if t == nil {
		return schedule.Date{}
	}
	return schedule.DateOf(*t)
}

func minuteOrZero(m *int16) schedule.MinuteOfDay {
	if m == nil {
		return 0
	}
	return schedule.MinuteOfDay(*m)
}
