package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"golang.org/x/crypto/bcrypt"
)

type Storage struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) DB() *pgxpool.Pool {
	return s.db
}

func (s *Storage) Stop() {
	s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL DEFAULT '',
	profile_image TEXT NOT NULL DEFAULT '',
	bio           TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS categories (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	cover_image TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS photos (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL,
	is_premium  BOOLEAN NOT NULL DEFAULT FALSE,
	metadata    JSONB,
	user_id     BIGINT NOT NULL REFERENCES users(id),
	category_id BIGINT NOT NULL REFERENCES categories(id),
	likes       BIGINT NOT NULL DEFAULT 0,
	views       BIGINT NOT NULL DEFAULT 0,
	tags        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_photos_category_id ON photos(category_id);
CREATE INDEX IF NOT EXISTS idx_photos_user_id ON photos(user_id);

CREATE TABLE IF NOT EXISTS subscription_plans (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	type          TEXT NOT NULL,
	monthly_price BIGINT NOT NULL,
	yearly_price  BIGINT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	features      JSONB NOT NULL DEFAULT '[]',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS subscriptions (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id),
	plan_id    BIGINT NOT NULL REFERENCES subscription_plans(id),
	status     TEXT NOT NULL,
	interval   TEXT NOT NULL,
	start_date TIMESTAMPTZ NOT NULL,
	end_date   TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS contact_messages (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'new',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создает схему, если она еще не создана
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgresql.Migrate"

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type seedCategory struct {
	name        string
	slug        string
	description string
	coverImage  string
}

type seedPlan struct {
	name         string
	planType     string
	monthlyPrice int64
	yearlyPrice  int64
	description  string
	features     string
}

var seedCategories = []seedCategory{
	{"Landscapes", "landscapes", "Beautiful landscape photography from around the world",
		"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=800&q=80"},
	{"Portraits", "portraits", "Stunning portrait photography capturing human emotion",
		"https://images.unsplash.com/photo-1517070208541-6ddc4d3efbcb?auto=format&fit=crop&w=800&q=80"},
	{"Urban", "urban", "Urban photography showcasing city life and architecture",
		"https://images.unsplash.com/photo-1473893604213-3df9c15cf957?auto=format&fit=crop&w=800&q=80"},
	{"Wildlife", "wildlife", "Captivating wildlife photography from nature's realm",
		"https://images.unsplash.com/photo-1512790182412-b19e6d62bc39?auto=format&fit=crop&w=800&q=80"},
	{"Food", "food", "Delicious food photography that makes your mouth water",
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=800&q=80"},
	{"Architecture", "architecture", "Striking architectural photography from around the globe",
		"https://images.unsplash.com/photo-1554080353-a576cf803bda?auto=format&fit=crop&w=800&q=80"},
}

var seedPlans = []seedPlan{
	{"Basic", "basic", 999, 9900, "A starter plan for casual photography enthusiasts",
		`["Access to 100+ premium photos","Download up to 10 photos/month","Basic photo metadata","Standard image resolution"]`},
	{"Pro", "pro", 1999, 19900, "The perfect plan for photography lovers",
		`["Access to 500+ premium photos","Download up to 50 photos/month","Full photo metadata and EXIF data","High-resolution images","Priority customer support"]`},
	{"Elite", "elite", 3999, 39900, "Professional plan for serious photographers",
		`["Unlimited access to all premium photos","Unlimited downloads","Complete metadata and photographer notes","Ultra high-resolution RAW images","Commercial usage rights","24/7 dedicated support"]`},
}

// Seed наполняет пустые таблицы стартовыми данными: категории,
// администратор и тарифные планы. Повторный запуск ничего не меняет.
func (s *Storage) Seed(ctx context.Context) error {
	const op = "storage.postgresql.Seed"

	sb := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var categoryCount int64
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&categoryCount); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if categoryCount == 0 {
		builder := sb.Insert("categories").Columns("name", "slug", "description", "cover_image")
		for _, c := range seedCategories {
			builder = builder.Values(c.name, c.slug, c.description, c.coverImage)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%s: can't build sql: %w", op, err)
		}

		if _, err := s.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	var userCount int64
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if userCount == 0 {
		passHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		query, args, err := sb.Insert("users").
			Columns("username", "password", "email", "name", "role", "bio").
			Values("admin", string(passHash), "admin@artlens.com", "Admin User", "admin",
				"Site administrator and photography enthusiast").
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: can't build sql: %w", op, err)
		}

		if _, err := s.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	var planCount int64
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM subscription_plans").Scan(&planCount); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if planCount == 0 {
		builder := sb.Insert("subscription_plans").
			Columns("name", "type", "monthly_price", "yearly_price", "description", "features")
		for _, p := range seedPlans {
			builder = builder.Values(p.name, p.planType, p.monthlyPrice, p.yearlyPrice, p.description, p.features)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%s: can't build sql: %w", op, err)
		}

		if _, err := s.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
