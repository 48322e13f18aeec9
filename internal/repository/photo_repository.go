package repository

import (
	"context"
	"errors"
	"fmt"

	"artlens/internal/domain/models"
	"artlens/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	SortNewest  = "newest"
	SortPopular = "popular"
	SortViews   = "views"
)

// PhotoFilter описывает условия выборки списка фотографий.
// Нулевое значение — без фильтрации, сортировка по умолчанию.
type PhotoFilter struct {
	CategoryID *int64
	SearchTerm string
	SortBy     string
}

// applyPhotoFilter сворачивает фильтр в единый builder. Один и тот же
// свёрнутый предикат используется и для страницы, и для подсчета строк.
func applyPhotoFilter(builder sq.SelectBuilder, f PhotoFilter) sq.SelectBuilder {
	if f.CategoryID != nil {
		builder = builder.Where(sq.Eq{"p.category_id": *f.CategoryID})
	}

	if f.SearchTerm != "" {
		pattern := "%" + f.SearchTerm + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.description": pattern},
			sq.ILike{"p.tags": pattern},
		})
	}

	return builder
}

var sortClauses = map[string]string{
	SortNewest:  "p.created_at DESC",
	SortPopular: "p.likes DESC",
	SortViews:   "p.views DESC",
}

// sortClause возвращает ORDER BY по белому списку; неизвестные
// значения явно приводятся к сортировке по новизне
func sortClause(sortBy string) string {
	if clause, ok := sortClauses[sortBy]; ok {
		return clause
	}

	return sortClauses[SortNewest]
}

type PhotoRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var photoJoinedColumns = []string{
	"p.id", "p.title", "p.slug", "p.description", "p.image_url", "p.is_premium",
	"p.metadata", "p.user_id", "p.category_id", "p.likes", "p.views", "p.tags",
	"p.created_at", "p.updated_at",
	"u.id", "u.username", "u.email", "u.name", "u.profile_image", "u.bio", "u.role",
	"u.created_at", "u.updated_at",
	"c.id", "c.name", "c.slug", "c.description", "c.cover_image", "c.created_at", "c.updated_at",
}

// joinedSelect собирает базовый запрос фотографии вместе с автором и категорией
func (r *PhotoRepo) joinedSelect() sq.SelectBuilder {
	return r.sb.Select(photoJoinedColumns...).
		From("photos p").
		Join("users u ON p.user_id = u.id").
		Join("categories c ON p.category_id = c.id")
}

func scanPhotoWithRelations(row pgx.Row) (models.PhotoWithRelations, error) {
	var p models.PhotoWithRelations
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.ImageURL,
		&p.IsPremium,
		&p.Metadata,
		&p.UserID,
		&p.CategoryID,
		&p.Likes,
		&p.Views,
		&p.Tags,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.User.ID,
		&p.User.Username,
		&p.User.Email,
		&p.User.Name,
		&p.User.ProfileImage,
		&p.User.Bio,
		&p.User.Role,
		&p.User.CreatedAt,
		&p.User.UpdatedAt,
		&p.Category.ID,
		&p.Category.Name,
		&p.Category.Slug,
		&p.Category.Description,
		&p.Category.CoverImage,
		&p.Category.CreatedAt,
		&p.Category.UpdatedAt,
	)
	return p, err
}

func (r *PhotoRepo) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	const op = "repository.photo_repository.CreatePhoto"

	query, args, err := r.sb.Insert("photos").
		Columns(
			"title",
			"slug",
			"description",
			"image_url",
			"is_premium",
			"metadata",
			"user_id",
			"category_id",
			"tags",
		).
		Values(
			photo.Title,
			photo.Slug,
			photo.Description,
			photo.ImageURL,
			photo.IsPremium,
			photo.Metadata,
			photo.UserID,
			photo.CategoryID,
			photo.Tags,
		).
		Suffix("RETURNING id, likes, views, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Photo{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&photo.ID,
		&photo.Likes,
		&photo.Views,
		&photo.CreatedAt,
		&photo.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Photo{}, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}

		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

func (r *PhotoRepo) PhotoByID(ctx context.Context, id int64) (models.PhotoWithRelations, error) {
	const op = "repository.photo_repository.PhotoByID"

	return r.findOne(ctx, op, sq.Eq{"p.id": id})
}

func (r *PhotoRepo) PhotoBySlug(ctx context.Context, slug string) (models.PhotoWithRelations, error) {
	const op = "repository.photo_repository.PhotoBySlug"

	return r.findOne(ctx, op, sq.Eq{"p.slug": slug})
}

func (r *PhotoRepo) findOne(ctx context.Context, op string, pred sq.Eq) (models.PhotoWithRelations, error) {
	query, args, err := r.joinedSelect().Where(pred).ToSql()
	if err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	photo, err := scanPhotoWithRelations(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, storage.ErrPhotoNotFound)
		}

		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

// ListPhotos возвращает страницу фотографий и общее количество строк,
// подходящих под фильтр. Предикаты страницы и счетчика всегда совпадают.
func (r *PhotoRepo) ListPhotos(ctx context.Context, filter PhotoFilter, page, limit int) ([]models.PhotoWithRelations, int64, error) {
	const op = "repository.photo_repository.ListPhotos"

	pageQuery := applyPhotoFilter(r.joinedSelect(), filter).
		OrderBy(sortClause(filter.SortBy)).
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	photos, err := r.queryPage(ctx, op, pageQuery)
	if err != nil {
		return nil, 0, err
	}

	countQuery := applyPhotoFilter(r.sb.Select("COUNT(*)").From("photos p"), filter)

	total, err := r.queryCount(ctx, op, countQuery)
	if err != nil {
		return nil, 0, err
	}

	return photos, total, nil
}

func (r *PhotoRepo) ListByCategory(ctx context.Context, categoryID int64, page, limit int) ([]models.PhotoWithRelations, int64, error) {
	return r.ListPhotos(ctx, PhotoFilter{CategoryID: &categoryID}, page, limit)
}

func (r *PhotoRepo) ListByOwner(ctx context.Context, userID int64, page, limit int) ([]models.PhotoWithRelations, int64, error) {
	const op = "repository.photo_repository.ListByOwner"

	pageQuery := r.joinedSelect().
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy(sortClause(SortNewest)).
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	photos, err := r.queryPage(ctx, op, pageQuery)
	if err != nil {
		return nil, 0, err
	}

	countQuery := r.sb.Select("COUNT(*)").From("photos p").Where(sq.Eq{"p.user_id": userID})

	total, err := r.queryCount(ctx, op, countQuery)
	if err != nil {
		return nil, 0, err
	}

	return photos, total, nil
}

func (r *PhotoRepo) queryPage(ctx context.Context, op string, builder sq.SelectBuilder) ([]models.PhotoWithRelations, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var photos []models.PhotoWithRelations
	for rows.Next() {
		p, err := scanPhotoWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scanning failed: %w", op, err)
		}

		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", op, err)
	}

	return photos, nil
}

func (r *PhotoRepo) queryCount(ctx context.Context, op string, builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

// IncrementViews атомарно увеличивает счетчик просмотров одним UPDATE
func (r *PhotoRepo) IncrementViews(ctx context.Context, id int64) error {
	const op = "repository.photo_repository.IncrementViews"

	return r.bumpCounter(ctx, op, id, sq.Expr("views + 1"), "views")
}

// IncrementLikes атомарно увеличивает счетчик лайков одним UPDATE
func (r *PhotoRepo) IncrementLikes(ctx context.Context, id int64) error {
	const op = "repository.photo_repository.IncrementLikes"

	return r.bumpCounter(ctx, op, id, sq.Expr("likes + 1"), "likes")
}

// DecrementLikes уменьшает счетчик лайков; при нуле строка не меняется,
// счетчик не уходит в минус
func (r *PhotoRepo) DecrementLikes(ctx context.Context, id int64) error {
	const op = "repository.photo_repository.DecrementLikes"

	query, args, err := r.sb.Update("photos").
		Set("likes", sq.Expr("likes - 1")).
		Where(sq.And{sq.Eq{"id": id}, sq.Gt{"likes": 0}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *PhotoRepo) bumpCounter(ctx context.Context, op string, id int64, expr sq.Sqlizer, column string) error {
	query, args, err := r.sb.Update("photos").
		Set(column, expr).
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
