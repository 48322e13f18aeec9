package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"log/slog"
	"strings"
	"testing"

	"artlens/internal/domain/models"
	"artlens/internal/repository"
	"artlens/internal/storage"
	"artlens/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	args := m.Called(ctx, photo)
	return args.Get(0).(models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) PhotoByID(ctx context.Context, id int64) (models.PhotoWithRelations, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.PhotoWithRelations), args.Error(1)
}

func (m *MockPhotoRepository) PhotoBySlug(ctx context.Context, slug string) (models.PhotoWithRelations, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.PhotoWithRelations), args.Error(1)
}

func (m *MockPhotoRepository) ListPhotos(ctx context.Context, filter repository.PhotoFilter, page, limit int) ([]models.PhotoWithRelations, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	return args.Get(0).([]models.PhotoWithRelations), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoRepository) ListByCategory(ctx context.Context, categoryID int64, page, limit int) ([]models.PhotoWithRelations, int64, error) {
	args := m.Called(ctx, categoryID, page, limit)
	return args.Get(0).([]models.PhotoWithRelations), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoRepository) ListByOwner(ctx context.Context, userID int64, page, limit int) ([]models.PhotoWithRelations, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	return args.Get(0).([]models.PhotoWithRelations), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoRepository) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPhotoRepository) IncrementLikes(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPhotoRepository) DecrementLikes(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListWithPhotoCount(ctx context.Context) ([]models.CategoryWithCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CategoryWithCount), args.Error(1)
}

func (m *MockCategoryRepository) CategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CategoryByID(ctx context.Context, id int64) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveBytes(ctx context.Context, data []byte, ext string) (string, error) {
	args := m.Called(ctx, data, ext)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, fileName string) error {
	return m.Called(ctx, fileName).Error(0)
}

func (m *MockFileStorage) GetFullPath(fileName string) string {
	return m.Called(fileName).String(0)
}

func (m *MockFileStorage) URL(fileName string) string {
	return "/uploads/" + fileName
}

func (m *MockFileStorage) BaseURL() string {
	return "/uploads"
}

func (m *MockFileStorage) GetBaseDir() string {
	return "./uploads"
}

func newTestService(t *testing.T) (*PhotoService, *MockPhotoRepository, *MockCategoryRepository, *MockFileStorage) {
	t.Helper()

	photoRepo := new(MockPhotoRepository)
	categoryRepo := new(MockCategoryRepository)
	fileStorage := new(MockFileStorage)
	service := NewPhotoService(slog.Default(), photoRepo, categoryRepo, fileStorage)

	return service, photoRepo, categoryRepo, fileStorage
}

func makeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	return buf.Bytes()
}

func validIngestInput(data []byte) dto.PhotoIngestInput {
	return dto.PhotoIngestInput{
		Data:       data,
		Filename:   "test.jpg",
		MimeType:   "image/jpeg",
		Size:       int64(len(data)),
		Title:      "Mountain Sunset",
		CategoryID: 1,
		OwnerID:    1,
	}
}

func TestPhotoService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("successful ingest", func(t *testing.T) {
		service, photoRepo, categoryRepo, fileStorage := newTestService(t)

		data := makeTestJPEG(t, 100, 80)

		categoryRepo.On("CategoryByID", ctx, int64(1)).
			Return(models.Category{ID: 1, Name: "Landscapes"}, nil).Once()
		fileStorage.On("SaveBytes", ctx, mock.Anything, ".jpg").
			Return("abc.jpg", nil).Once()
		photoRepo.On("CreatePhoto", ctx, mock.MatchedBy(func(p models.Photo) bool {
			return strings.HasPrefix(p.Slug, "mountain-sunset-") &&
				p.ImageURL == "/uploads/abc.jpg" &&
				p.Metadata["format"] == "jpeg"
		})).Return(models.Photo{ID: 7, Slug: "mountain-sunset-a1b2c3d4"}, nil).Once()

		photo, err := service.Ingest(ctx, validIngestInput(data))
		require.NoError(t, err)
		assert.Equal(t, int64(7), photo.ID)

		photoRepo.AssertExpectations(t)
		fileStorage.AssertExpectations(t)
	})

	t.Run("oversized file rejected before any work", func(t *testing.T) {
		service, photoRepo, _, fileStorage := newTestService(t)

		input := validIngestInput([]byte("x"))
		input.Size = MaxUploadSize + 1

		_, err := service.Ingest(ctx, input)
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)

		photoRepo.AssertNotCalled(t, "CreatePhoto")
		fileStorage.AssertNotCalled(t, "SaveBytes")
	})

	t.Run("empty file rejected", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		input := validIngestInput(nil)
		input.Size = 0

		_, err := service.Ingest(ctx, input)
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		service, photoRepo, _, fileStorage := newTestService(t)

		input := validIngestInput([]byte("not an image"))
		input.MimeType = "application/pdf"

		_, err := service.Ingest(ctx, input)
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)

		photoRepo.AssertNotCalled(t, "CreatePhoto")
		fileStorage.AssertNotCalled(t, "SaveBytes")
	})

	t.Run("unknown category", func(t *testing.T) {
		service, _, categoryRepo, _ := newTestService(t)

		data := makeTestJPEG(t, 10, 10)

		categoryRepo.On("CategoryByID", ctx, int64(1)).
			Return(models.Category{}, storage.ErrCategoryNotFound).Once()

		_, err := service.Ingest(ctx, validIngestInput(data))
		assert.ErrorIs(t, err, storage.ErrCategoryNotFound)
	})

	t.Run("corrupt image body", func(t *testing.T) {
		service, _, categoryRepo, fileStorage := newTestService(t)

		// Заявленный mime верный, тело не декодируется
		input := validIngestInput([]byte("garbage bytes, not a jpeg"))

		categoryRepo.On("CategoryByID", ctx, int64(1)).
			Return(models.Category{ID: 1}, nil).Once()

		_, err := service.Ingest(ctx, input)
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)

		fileStorage.AssertNotCalled(t, "SaveBytes")
	})

	t.Run("slug collision retried once", func(t *testing.T) {
		service, photoRepo, categoryRepo, fileStorage := newTestService(t)

		data := makeTestJPEG(t, 10, 10)

		categoryRepo.On("CategoryByID", ctx, int64(1)).
			Return(models.Category{ID: 1}, nil).Once()
		fileStorage.On("SaveBytes", ctx, mock.Anything, ".jpg").
			Return("abc.jpg", nil).Once()
		photoRepo.On("CreatePhoto", ctx, mock.Anything).
			Return(models.Photo{}, storage.ErrSlugTaken).Once()
		photoRepo.On("CreatePhoto", ctx, mock.Anything).
			Return(models.Photo{ID: 8}, nil).Once()

		photo, err := service.Ingest(ctx, validIngestInput(data))
		require.NoError(t, err)
		assert.Equal(t, int64(8), photo.ID)

		photoRepo.AssertExpectations(t)
	})

	t.Run("file removed when insert fails", func(t *testing.T) {
		service, photoRepo, categoryRepo, fileStorage := newTestService(t)

		data := makeTestJPEG(t, 10, 10)

		categoryRepo.On("CategoryByID", ctx, int64(1)).
			Return(models.Category{ID: 1}, nil).Once()
		fileStorage.On("SaveBytes", ctx, mock.Anything, ".jpg").
			Return("abc.jpg", nil).Once()
		photoRepo.On("CreatePhoto", ctx, mock.Anything).
			Return(models.Photo{}, errors.New("db error")).Once()
		fileStorage.On("Delete", ctx, "abc.jpg").Return(nil).Once()

		_, err := service.Ingest(ctx, validIngestInput(data))
		assert.ErrorContains(t, err, "db error")

		fileStorage.AssertExpectations(t)
	})

	t.Run("short title rejected before any work", func(t *testing.T) {
		service, photoRepo, categoryRepo, fileStorage := newTestService(t)

		data := makeTestJPEG(t, 10, 10)
		input := validIngestInput(data)
		input.Title = "ab"

		_, err := service.Ingest(ctx, input)
		// Ошибка валидации распознаётся и сквозь обёртку %w
		assert.True(t, models.IsPhotoValidationError(err))

		categoryRepo.AssertNotCalled(t, "CategoryByID")
		fileStorage.AssertNotCalled(t, "SaveBytes")
		fileStorage.AssertNotCalled(t, "Delete")
		photoRepo.AssertNotCalled(t, "CreatePhoto")
	})

	t.Run("whitespace-only title rejected", func(t *testing.T) {
		service, _, _, fileStorage := newTestService(t)

		data := makeTestJPEG(t, 10, 10)
		input := validIngestInput(data)
		input.Title = "   a   "

		_, err := service.Ingest(ctx, input)
		assert.True(t, models.IsPhotoValidationError(err))

		fileStorage.AssertNotCalled(t, "SaveBytes")
	})
}

func TestPhotoService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("view is counted and fresh row returned", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		stored := models.PhotoWithRelations{Photo: models.Photo{ID: 5, Slug: "ocean-waves", Views: 10}}
		bumped := models.PhotoWithRelations{Photo: models.Photo{ID: 5, Slug: "ocean-waves", Views: 11}}

		photoRepo.On("PhotoBySlug", ctx, "ocean-waves").Return(stored, nil).Once()
		photoRepo.On("IncrementViews", ctx, int64(5)).Return(nil).Once()
		photoRepo.On("PhotoByID", ctx, int64(5)).Return(bumped, nil).Once()

		photo, err := service.GetBySlug(ctx, "ocean-waves")
		require.NoError(t, err)
		assert.Equal(t, int64(11), photo.Views)

		photoRepo.AssertExpectations(t)
	})

	t.Run("photo not found", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		photoRepo.On("PhotoBySlug", ctx, "missing").
			Return(models.PhotoWithRelations{}, storage.ErrPhotoNotFound).Once()

		_, err := service.GetBySlug(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrPhotoNotFound)

		photoRepo.AssertNotCalled(t, "IncrementViews")
	})
}

func TestPhotoService_Likes(t *testing.T) {
	ctx := context.Background()

	t.Run("like bumps counter", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		before := models.PhotoWithRelations{Photo: models.Photo{ID: 3, Likes: 1}}
		after := models.PhotoWithRelations{Photo: models.Photo{ID: 3, Likes: 2}}

		photoRepo.On("PhotoByID", ctx, int64(3)).Return(before, nil).Once()
		photoRepo.On("IncrementLikes", ctx, int64(3)).Return(nil).Once()
		photoRepo.On("PhotoByID", ctx, int64(3)).Return(after, nil).Once()

		photo, err := service.Like(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(2), photo.Likes)
	})

	t.Run("unlike on missing photo", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		photoRepo.On("PhotoByID", ctx, int64(99)).
			Return(models.PhotoWithRelations{}, storage.ErrPhotoNotFound).Once()

		_, err := service.Unlike(ctx, 99)
		assert.ErrorIs(t, err, storage.ErrPhotoNotFound)

		photoRepo.AssertNotCalled(t, "DecrementLikes")
	})
}

func TestPhotoService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("page math", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		photoRepo.On("ListPhotos", ctx, repository.PhotoFilter{}, 1, 12).
			Return([]models.PhotoWithRelations{{}}, int64(25), nil).Once()

		page, err := service.List(ctx, repository.PhotoFilter{}, 1, 12)
		require.NoError(t, err)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 3, page.Pages)
	})

	t.Run("paging is clamped", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		photoRepo.On("ListPhotos", ctx, repository.PhotoFilter{}, 1, 12).
			Return([]models.PhotoWithRelations{}, int64(0), nil).Once()

		_, err := service.List(ctx, repository.PhotoFilter{}, -5, 1000)
		require.NoError(t, err)

		photoRepo.AssertExpectations(t)
	})

	t.Run("nil rows become empty slice", func(t *testing.T) {
		service, photoRepo, _, _ := newTestService(t)

		photoRepo.On("ListPhotos", ctx, repository.PhotoFilter{}, 1, 12).
			Return([]models.PhotoWithRelations(nil), int64(0), nil).Once()

		page, err := service.List(ctx, repository.PhotoFilter{}, 1, 12)
		require.NoError(t, err)
		assert.NotNil(t, page.Photos)
		assert.Len(t, page.Photos, 0)
	})
}
