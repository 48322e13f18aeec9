package repository

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db           *pgxpool.Pool
	User         UserRepository
	Category     CategoryRepository
	Photo        PhotoRepository
	Subscription SubscriptionRepository
	Contact      ContactRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepository(db),
		Category:     NewCategoryRepository(db),
		Photo:        NewPhotoRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Contact:      NewContactRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}
