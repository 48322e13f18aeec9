package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"artlens/internal/domain/models"
	"artlens/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SubscriptionPlan), args.Error(1)
}

func (m *MockSubscriptionRepository) PlanByID(ctx context.Context, id int64) (models.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.SubscriptionPlan), args.Error(1)
}

func (m *MockSubscriptionRepository) ActiveByUser(ctx context.Context, userID int64) (models.SubscriptionWithPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.SubscriptionWithPlan), args.Error(1)
}

func (m *MockSubscriptionRepository) CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CancelSubscription(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestSubscriptionService_Plans(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSubscriptionRepository)
	service := NewSubscriptionService(slog.Default(), mockRepo)

	plans := []models.SubscriptionPlan{
		{ID: 1, Name: "Basic", MonthlyPrice: 999},
		{ID: 2, Name: "Pro", MonthlyPrice: 1999},
	}

	mockRepo.On("Plans", ctx).Return(plans, nil).Once()

	first, err := service.Plans(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// Повторный вызов идет из кеша
	second, err := service.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	mockRepo.AssertNumberOfCalls(t, "Plans", 1)
}

func TestSubscriptionService_CurrentForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("active subscription returned", func(t *testing.T) {
		mockRepo := new(MockSubscriptionRepository)
		service := NewSubscriptionService(slog.Default(), mockRepo)

		mockRepo.On("ActiveByUser", ctx, int64(1)).
			Return(models.SubscriptionWithPlan{
				Subscription: models.Subscription{ID: 10, UserID: 1, Status: models.SubscriptionStatusActive},
				Plan:         models.SubscriptionPlan{ID: 2, Name: "Pro"},
			}, nil).Once()

		sub, err := service.CurrentForUser(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, "Pro", sub.Plan.Name)
	})

	t.Run("no subscription is not an error", func(t *testing.T) {
		mockRepo := new(MockSubscriptionRepository)
		service := NewSubscriptionService(slog.Default(), mockRepo)

		mockRepo.On("ActiveByUser", ctx, int64(2)).
			Return(models.SubscriptionWithPlan{}, storage.ErrNoActivePlan).Once()

		sub, err := service.CurrentForUser(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, sub)
	})
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("monthly interval sets end date one month out", func(t *testing.T) {
		mockRepo := new(MockSubscriptionRepository)
		service := NewSubscriptionService(slog.Default(), mockRepo)

		mockRepo.On("PlanByID", ctx, int64(2)).
			Return(models.SubscriptionPlan{ID: 2, Name: "Pro"}, nil).Once()
		mockRepo.On("CreateSubscription", ctx, mock.MatchedBy(func(s models.Subscription) bool {
			if s.EndDate == nil {
				return false
			}
			gap := s.EndDate.Sub(s.StartDate)
			return s.Status == models.SubscriptionStatusActive &&
				gap >= 27*24*time.Hour && gap <= 32*24*time.Hour
		})).Return(models.Subscription{ID: 5}, nil).Once()

		sub, err := service.Subscribe(ctx, 1, 2, models.SubscriptionIntervalMonthly)
		require.NoError(t, err)
		assert.Equal(t, int64(5), sub.ID)
	})

	t.Run("unknown plan", func(t *testing.T) {
		mockRepo := new(MockSubscriptionRepository)
		service := NewSubscriptionService(slog.Default(), mockRepo)

		mockRepo.On("PlanByID", ctx, int64(99)).
			Return(models.SubscriptionPlan{}, storage.ErrPlanNotFound).Once()

		_, err := service.Subscribe(ctx, 1, 99, models.SubscriptionIntervalMonthly)
		assert.ErrorIs(t, err, storage.ErrPlanNotFound)

		mockRepo.AssertNotCalled(t, "CreateSubscription")
	})

	t.Run("unknown interval", func(t *testing.T) {
		mockRepo := new(MockSubscriptionRepository)
		service := NewSubscriptionService(slog.Default(), mockRepo)

		mockRepo.On("PlanByID", ctx, int64(2)).
			Return(models.SubscriptionPlan{ID: 2}, nil).Once()

		_, err := service.Subscribe(ctx, 1, 2, "weekly")
		assert.ErrorIs(t, err, ErrUnknownInterval)
	})
}

func TestSubscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSubscriptionRepository)
	service := NewSubscriptionService(slog.Default(), mockRepo)

	mockRepo.On("CancelSubscription", ctx, int64(10)).Return(nil).Once()

	require.NoError(t, service.Cancel(ctx, 10))
	mockRepo.AssertExpectations(t)
}
