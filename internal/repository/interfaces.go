package repository

import (
	"context"

	"artlens/internal/domain/models"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
}

type CategoryRepository interface {
	ListWithPhotoCount(ctx context.Context) ([]models.CategoryWithCount, error)
	CategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	CategoryByID(ctx context.Context, id int64) (models.Category, error)
}

type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	PhotoByID(ctx context.Context, id int64) (models.PhotoWithRelations, error)
	PhotoBySlug(ctx context.Context, slug string) (models.PhotoWithRelations, error)
	ListPhotos(ctx context.Context, filter PhotoFilter, page, limit int) ([]models.PhotoWithRelations, int64, error)
	ListByCategory(ctx context.Context, categoryID int64, page, limit int) ([]models.PhotoWithRelations, int64, error)
	ListByOwner(ctx context.Context, userID int64, page, limit int) ([]models.PhotoWithRelations, int64, error)
	IncrementViews(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) error
	DecrementLikes(ctx context.Context, id int64) error
}

type SubscriptionRepository interface {
	Plans(ctx context.Context) ([]models.SubscriptionPlan, error)
	PlanByID(ctx context.Context, id int64) (models.SubscriptionPlan, error)
	ActiveByUser(ctx context.Context, userID int64) (models.SubscriptionWithPlan, error)
	CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error)
	CancelSubscription(ctx context.Context, id int64) error
}

type ContactRepository interface {
	SaveMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context, status string, page, limit int) ([]models.ContactMessage, int64, error)
	UpdateMessageStatus(ctx context.Context, id int64, status string) error
}
