package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"artlens/internal/domain/models"
	"artlens/internal/lib/logger/sl"
	"artlens/internal/repository"

	"github.com/patrickmn/go-cache"
)

const (
	categoriesCacheKey = "categories_with_count"

	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

type CategoryService struct {
	log   *slog.Logger
	repo  repository.CategoryRepository
	cache *cache.Cache
}

func NewCategoryService(log *slog.Logger, repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		log:   log,
		repo:  repo,
		cache: cache.New(cacheTTL, cacheCleanup),
	}
}

// ListWithCounts возвращает категории с количеством фотографий.
// Результат кешируется: список маленький, а запрос с агрегацией.
func (s *CategoryService) ListWithCounts(ctx context.Context) ([]models.CategoryWithCount, error) {
	const op = "category_service.ListWithCounts"

	if cached, ok := s.cache.Get(categoriesCacheKey); ok {
		return cached.([]models.CategoryWithCount), nil
	}

	categories, err := s.repo.ListWithPhotoCount(ctx)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(categoriesCacheKey, categories)

	return categories, nil
}

func (s *CategoryService) BySlug(ctx context.Context, slug string) (models.Category, error) {
	const op = "category_service.BySlug"

	category, err := s.repo.CategoryBySlug(ctx, slug)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// InvalidateCounts сбрасывает кеш после загрузки новой фотографии
func (s *CategoryService) InvalidateCounts() {
	s.cache.Delete(categoriesCacheKey)
}
