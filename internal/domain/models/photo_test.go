package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoto_Validate(t *testing.T) {
	valid := Photo{
		Title:      "Mountain Sunset",
		ImageURL:   "/uploads/abc.jpg",
		UserID:     1,
		CategoryID: 1,
	}

	t.Run("valid photo", func(t *testing.T) {
		p := valid
		assert.NoError(t, p.Validate())
	})

	t.Run("short title", func(t *testing.T) {
		p := valid
		p.Title = "ab"

		err := p.Validate()
		assert.True(t, IsPhotoValidationError(err))
		assert.Contains(t, err.Error(), "title must be at least 3 characters")
	})

	t.Run("all errors collected", func(t *testing.T) {
		var p Photo

		err := p.Validate()

		var verr *PhotoValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Errors, 4)
	})
}

func TestIsPhotoValidationError(t *testing.T) {
	verr := &PhotoValidationError{Errors: []string{"title must be at least 3 characters"}}

	assert.True(t, IsPhotoValidationError(verr))

	// Ошибка валидации распознаётся и обёрнутой через %w
	assert.True(t, IsPhotoValidationError(fmt.Errorf("photo_service.Ingest: %w", verr)))

	assert.False(t, IsPhotoValidationError(errors.New("db error")))
	assert.False(t, IsPhotoValidationError(nil))
}

func TestPhoto_TagList(t *testing.T) {
	p := Photo{Tags: "nature, sunset , , mountains"}
	assert.Equal(t, []string{"nature", "sunset", "mountains"}, p.TagList())

	assert.Nil(t, (&Photo{}).TagList())
}
