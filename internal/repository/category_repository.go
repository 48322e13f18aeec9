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

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var categoryColumns = []string{
	"id", "name", "slug", "description", "cover_image", "created_at", "updated_at",
}

func (r *CategoryRepo) scanCategory(row pgx.Row) (models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.CoverImage,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// ListWithPhotoCount возвращает категории с количеством фотографий,
// отсортированные по имени
func (r *CategoryRepo) ListWithPhotoCount(ctx context.Context) ([]models.CategoryWithCount, error) {
	const op = "repository.category_repository.ListWithPhotoCount"

	query, args, err := r.sb.
		Select(
			"c.id",
			"c.name",
			"c.slug",
			"c.description",
			"c.cover_image",
			"COUNT(p.id) AS photo_count",
		).
		From("categories c").
		LeftJoin("photos p ON c.id = p.category_id").
		GroupBy("c.id").
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.CategoryWithCount
	for rows.Next() {
		var c models.CategoryWithCount
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Slug,
			&c.Description,
			&c.CoverImage,
			&c.PhotoCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return categories, nil
}

func (r *CategoryRepo) CategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	const op = "repository.category_repository.CategoryBySlug"

	return r.findOne(ctx, op, sq.Eq{"slug": slug})
}

func (r *CategoryRepo) CategoryByID(ctx context.Context, id int64) (models.Category, error) {
	const op = "repository.category_repository.CategoryByID"

	return r.findOne(ctx, op, sq.Eq{"id": id})
}

func (r *CategoryRepo) findOne(ctx context.Context, op string, pred sq.Eq) (models.Category, error) {
	query, args, err := r.sb.Select(categoryColumns...).
		From("categories").
		Where(pred).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	category, err := r.scanCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrCategoryNotFound)
		}

		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}
