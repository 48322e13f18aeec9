package repository

import (
	"context"
	"fmt"

	"artlens/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepo) SaveMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	const op = "repository.contact_repository.SaveMessage"

	query, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "subject", "message").
		Values(msg.Name, msg.Email, msg.Subject, msg.Message).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&msg.ID,
		&msg.Status,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// ListMessages возвращает страницу сообщений, свежие первыми,
// с опциональным фильтром по статусу
func (r *ContactRepo) ListMessages(ctx context.Context, status string, page, limit int) ([]models.ContactMessage, int64, error) {
	const op = "repository.contact_repository.ListMessages"

	builder := r.sb.
		Select("id", "name", "email", "subject", "message", "status", "created_at", "updated_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	countBuilder := r.sb.Select("COUNT(*)").From("contact_messages")

	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
		countBuilder = countBuilder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Subject,
			&m.Message,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}

		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return messages, total, nil
}

func (r *ContactRepo) UpdateMessageStatus(ctx context.Context, id int64, status string) error {
	const op = "repository.contact_repository.UpdateMessageStatus"

	query, args, err := r.sb.Update("contact_messages").
		Set("status", status).
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
