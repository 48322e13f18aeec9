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

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var userColumns = []string{
	"id", "username", "password", "email", "name", "profile_image", "bio", "role",
	"created_at", "updated_at",
}

func (r *UserRepo) scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Email,
		&u.Name,
		&u.ProfileImage,
		&u.Bio,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "repository.user_repository.SaveUser"

	query, args, err := r.sb.Insert("users").
		Columns("username", "password", "email", "name", "profile_image", "bio").
		Values(
			user.Username,
			user.Password,
			user.Email,
			user.Name,
			user.ProfileImage,
			user.Bio,
		).
		Suffix("RETURNING id, role, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
			default:
				return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
			}
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *UserRepo) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "repository.user_repository.UserByUsername"

	return r.findOne(ctx, op, sq.Eq{"username": username})
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "repository.user_repository.UserByEmail"

	return r.findOne(ctx, op, sq.Eq{"email": email})
}

func (r *UserRepo) UserByID(ctx context.Context, id int64) (models.User, error) {
	const op = "repository.user_repository.UserByID"

	return r.findOne(ctx, op, sq.Eq{"id": id})
}

func (r *UserRepo) findOne(ctx context.Context, op string, pred sq.Eq) (models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	user, err := r.scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
