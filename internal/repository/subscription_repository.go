package repository

import (
	"context"
	"errors"
	"fmt"

	"artlens/internal/domain/models"
	"artlens/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type SubscriptionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var planColumns = []string{
	"id", "name", "type", "monthly_price", "yearly_price", "description", "features",
	"created_at", "updated_at",
}

func scanPlan(row pgx.Row) (models.SubscriptionPlan, error) {
	var p models.SubscriptionPlan
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.MonthlyPrice,
		&p.YearlyPrice,
		&p.Description,
		&p.Features,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Plans возвращает тарифные планы по возрастанию месячной цены
func (r *SubscriptionRepo) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "repository.subscription_repository.Plans"

	query, args, err := r.sb.Select(planColumns...).
		From("subscription_plans").
		OrderBy("monthly_price ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var plans []models.SubscriptionPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}

		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return plans, nil
}

func (r *SubscriptionRepo) PlanByID(ctx context.Context, id int64) (models.SubscriptionPlan, error) {
	const op = "repository.subscription_repository.PlanByID"

	query, args, err := r.sb.Select(planColumns...).
		From("subscription_plans").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.SubscriptionPlan{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	plan, err := scanPlan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SubscriptionPlan{}, fmt.Errorf("%s: %w", op, storage.ErrPlanNotFound)
		}

		return models.SubscriptionPlan{}, fmt.Errorf("%s: %w", op, err)
	}

	return plan, nil
}

// ActiveByUser возвращает действующую подписку пользователя вместе с планом:
// статус active и дата окончания в будущем
func (r *SubscriptionRepo) ActiveByUser(ctx context.Context, userID int64) (models.SubscriptionWithPlan, error) {
	const op = "repository.subscription_repository.ActiveByUser"

	query, args, err := r.sb.
		Select(
			"s.id", "s.user_id", "s.plan_id", "s.status", "s.interval",
			"s.start_date", "s.end_date", "s.created_at", "s.updated_at",
			"pl.id", "pl.name", "pl.type", "pl.monthly_price", "pl.yearly_price",
			"pl.description", "pl.features", "pl.created_at", "pl.updated_at",
		).
		From("subscriptions s").
		Join("subscription_plans pl ON s.plan_id = pl.id").
		Where(sq.And{
			sq.Eq{"s.user_id": userID},
			sq.Eq{"s.status": models.SubscriptionStatusActive},
			sq.Expr("s.end_date >= NOW()"),
		}).
		OrderBy("s.start_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.SubscriptionWithPlan{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var s models.SubscriptionWithPlan
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&s.PlanID,
		&s.Status,
		&s.Interval,
		&s.StartDate,
		&s.EndDate,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.Plan.ID,
		&s.Plan.Name,
		&s.Plan.Type,
		&s.Plan.MonthlyPrice,
		&s.Plan.YearlyPrice,
		&s.Plan.Description,
		&s.Plan.Features,
		&s.Plan.CreatedAt,
		&s.Plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SubscriptionWithPlan{}, fmt.Errorf("%s: %w", op, storage.ErrNoActivePlan)
		}

		return models.SubscriptionWithPlan{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *SubscriptionRepo) CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	const op = "repository.subscription_repository.CreateSubscription"

	query, args, err := r.sb.Insert("subscriptions").
		Columns("user_id", "plan_id", "status", "interval", "start_date", "end_date").
		Values(
			sub.UserID,
			sub.PlanID,
			sub.Status,
			sub.Interval,
			sub.StartDate,
			sub.EndDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (r *SubscriptionRepo) CancelSubscription(ctx context.Context, id int64) error {
	const op = "repository.subscription_repository.CancelSubscription"

	query, args, err := r.sb.Update("subscriptions").
		Set("status", models.SubscriptionStatusCancelled).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
