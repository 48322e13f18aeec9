package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artlens/internal/domain/models"
	"artlens/internal/lib/logger/sl"
	"artlens/internal/repository"
	"artlens/internal/storage"

	"github.com/patrickmn/go-cache"
)

const (
	plansCacheKey = "subscription_plans"

	plansCacheTTL     = 10 * time.Minute
	plansCacheCleanup = 20 * time.Minute
)

var ErrUnknownInterval = errors.New("unknown billing interval")

type SubscriptionService struct {
	log   *slog.Logger
	repo  repository.SubscriptionRepository
	cache *cache.Cache
}

func NewSubscriptionService(log *slog.Logger, repo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{
		log:   log,
		repo:  repo,
		cache: cache.New(plansCacheTTL, plansCacheCleanup),
	}
}

// Plans возвращает тарифные планы по возрастанию цены. Планы меняются
// редко, список кешируется.
func (s *SubscriptionService) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "subscription_service.Plans"

	if cached, ok := s.cache.Get(plansCacheKey); ok {
		return cached.([]models.SubscriptionPlan), nil
	}

	plans, err := s.repo.Plans(ctx)
	if err != nil {
		s.log.Error("failed to list plans", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(plansCacheKey, plans)

	return plans, nil
}

// CurrentForUser возвращает действующую подписку пользователя
// или nil, если её нет: отсутствие подписки — это free tier, не ошибка
func (s *SubscriptionService) CurrentForUser(ctx context.Context, userID int64) (*models.SubscriptionWithPlan, error) {
	const op = "subscription_service.CurrentForUser"

	sub, err := s.repo.ActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNoActivePlan) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sub, nil
}

// Subscribe оформляет подписку на план: дата окончания считается
// от текущего момента по выбранному интервалу
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, planID int64, interval string) (models.Subscription, error) {
	const op = "subscription_service.Subscribe"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("plan_id", planID),
	)

	if _, err := s.repo.PlanByID(ctx, planID); err != nil {
		log.Warn("plan lookup failed", sl.Err(err))

		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now().UTC()

	var end time.Time
	switch interval {
	case models.SubscriptionIntervalMonthly:
		end = start.AddDate(0, 1, 0)
	case models.SubscriptionIntervalYearly:
		end = start.AddDate(1, 0, 0)
	default:
		return models.Subscription{}, fmt.Errorf("%s: %w", op, ErrUnknownInterval)
	}

	sub, err := s.repo.CreateSubscription(ctx, models.Subscription{
		UserID:    userID,
		PlanID:    planID,
		Status:    models.SubscriptionStatusActive,
		Interval:  interval,
		StartDate: start,
		EndDate:   &end,
	})
	if err != nil {
		log.Error("failed to create subscription", sl.Err(err))

		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("subscription created", slog.Int64("subscription_id", sub.ID))

	return sub, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, id int64) error {
	const op = "subscription_service.Cancel"

	if err := s.repo.CancelSubscription(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
