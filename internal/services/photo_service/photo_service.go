package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"artlens/internal/domain/models"
	"artlens/internal/lib/imgproc"
	"artlens/internal/lib/logger/sl"
	"artlens/internal/lib/slug"
	"artlens/internal/metrics"
	"artlens/internal/repository"
	storagepkg "artlens/internal/storage"
	storage "artlens/internal/storage/filestorage"
	"artlens/internal/transport/http/dto"
)

const (
	// MaxUploadSize ограничивает размер исходного файла (10 MiB)
	MaxUploadSize = 10 << 20

	DefaultPageSize = 12
	MaxPageSize     = 100
)

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

type PhotoService struct {
	log         *slog.Logger
	repo        repository.PhotoRepository
	categories  repository.CategoryRepository
	fileStorage storage.FileStorage
}

func NewPhotoService(log *slog.Logger, repo repository.PhotoRepository, categories repository.CategoryRepository, fileStorage storage.FileStorage) *PhotoService {
	return &PhotoService{
		log:         log,
		repo:        repo,
		categories:  categories,
		fileStorage: fileStorage,
	}
}

// clampPaging нормализует параметры пагинации
func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}

func pages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func buildPage(photos []models.PhotoWithRelations, total int64, limit int) dto.PhotoPage {
	if photos == nil {
		photos = []models.PhotoWithRelations{}
	}

	return dto.PhotoPage{
		Photos: photos,
		Total:  total,
		Pages:  pages(total, limit),
	}
}

// List возвращает страницу фотографий по фильтру
func (s *PhotoService) List(ctx context.Context, filter repository.PhotoFilter, page, limit int) (dto.PhotoPage, error) {
	const op = "photo_service.List"

	page, limit = clampPaging(page, limit)

	photos, total, err := s.repo.ListPhotos(ctx, filter, page, limit)
	if err != nil {
		s.log.Error("failed to list photos", slog.String("op", op), sl.Err(err))

		return dto.PhotoPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return buildPage(photos, total, limit), nil
}

func (s *PhotoService) ListByCategory(ctx context.Context, categoryID int64, page, limit int) (dto.PhotoPage, error) {
	const op = "photo_service.ListByCategory"

	page, limit = clampPaging(page, limit)

	photos, total, err := s.repo.ListByCategory(ctx, categoryID, page, limit)
	if err != nil {
		return dto.PhotoPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return buildPage(photos, total, limit), nil
}

func (s *PhotoService) ListByOwner(ctx context.Context, userID int64, page, limit int) (dto.PhotoPage, error) {
	const op = "photo_service.ListByOwner"

	page, limit = clampPaging(page, limit)

	photos, total, err := s.repo.ListByOwner(ctx, userID, page, limit)
	if err != nil {
		return dto.PhotoPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return buildPage(photos, total, limit), nil
}

// GetBySlug возвращает фотографию и фиксирует просмотр.
// Счетчик обновляется одним UPDATE, затем строка перечитывается.
func (s *PhotoService) GetBySlug(ctx context.Context, photoSlug string) (models.PhotoWithRelations, error) {
	const op = "photo_service.GetBySlug"

	photo, err := s.repo.PhotoBySlug(ctx, photoSlug)
	if err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.IncrementViews(ctx, photo.ID); err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.PhotoByID(ctx, photo.ID)
	if err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *PhotoService) Like(ctx context.Context, id int64) (models.PhotoWithRelations, error) {
	const op = "photo_service.Like"

	if _, err := s.repo.PhotoByID(ctx, id); err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.IncrementLikes(ctx, id); err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	photo, err := s.repo.PhotoByID(ctx, id)
	if err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

func (s *PhotoService) Unlike(ctx context.Context, id int64) (models.PhotoWithRelations, error) {
	const op = "photo_service.Unlike"

	if _, err := s.repo.PhotoByID(ctx, id); err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DecrementLikes(ctx, id); err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	photo, err := s.repo.PhotoByID(ctx, id)
	if err != nil {
		return models.PhotoWithRelations{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

// Ingest проводит загрузку через конвейер: валидация, обработка
// изображения, запись файла, запись строки. Запись файла и строки не
// атомарны: при ошибке вставки файл удаляется по мере сил.
func (s *PhotoService) Ingest(ctx context.Context, input dto.PhotoIngestInput) (models.Photo, error) {
	const op = "photo_service.Ingest"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", input.Filename),
	)

	log.Info("ingest photo", slog.Int64("size", input.Size))

	if input.Size <= 0 || input.Size > MaxUploadSize {
		log.Warn("file size out of bounds", slog.Int64("size", input.Size))

		return models.Photo{}, fmt.Errorf("%s: %w", op, storagepkg.ErrFileTooLarge)
	}

	if _, ok := allowedMimeTypes[input.MimeType]; !ok {
		log.Warn("unsupported mime type", slog.String("mime_type", input.MimeType))

		return models.Photo{}, fmt.Errorf("%s: %w", op, storagepkg.ErrInvalidFileType)
	}

	// Заголовок проверяется до обработки изображения, чтобы отказ
	// не оставлял побочных эффектов
	if len(strings.TrimSpace(input.Title)) < 3 {
		log.Warn("title too short")

		return models.Photo{}, fmt.Errorf("%s: %w", op, &models.PhotoValidationError{
			Errors: []string{"title must be at least 3 characters"},
		})
	}

	if _, err := s.categories.CategoryByID(ctx, input.CategoryID); err != nil {
		log.Warn("category lookup failed", sl.Err(err))

		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	result, err := imgproc.Process(input.Data)
	if err != nil {
		log.Warn("image processing failed", sl.Err(err))

		return models.Photo{}, fmt.Errorf("%s: %w", op, storagepkg.ErrInvalidFileType)
	}

	fileName, err := s.fileStorage.SaveBytes(ctx, result.Data, ".jpg")
	if err != nil {
		log.Error("failed to save file", sl.Err(err))

		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	photo := models.Photo{
		Title:       input.Title,
		Slug:        slug.Make(input.Title),
		Description: input.Description,
		ImageURL:    s.fileStorage.URL(fileName),
		IsPremium:   input.IsPremium,
		Metadata:    result.Metadata(),
		UserID:      input.OwnerID,
		CategoryID:  input.CategoryID,
		Tags:        input.Tags,
	}

	if err := photo.Validate(); err != nil {
		_ = s.fileStorage.Delete(ctx, fileName)
		log.Warn("photo validation failed", sl.Err(err))

		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreatePhoto(ctx, photo)
	if errors.Is(err, storagepkg.ErrSlugTaken) {
		// Суффикс случайный, одного повтора достаточно
		photo.Slug = slug.Make(input.Title)
		created, err = s.repo.CreatePhoto(ctx, photo)
	}
	if err != nil {
		_ = s.fileStorage.Delete(ctx, fileName)
		log.Error("failed to save photo to database", sl.Err(err))

		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.PhotoUploadsTotal.Inc()

	log.Info("photo ingested",
		slog.Int64("photo_id", created.ID),
		slog.String("slug", created.Slug),
		slog.Int("width", result.Width),
		slog.Int("height", result.Height),
	)

	return created, nil
}
