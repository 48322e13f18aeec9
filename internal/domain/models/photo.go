package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Metadata map[string]interface{}

// Photo представляет фотографию в галерее
type Photo struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	IsPremium   bool      `json:"isPremium" db:"is_premium"`
	Metadata    Metadata  `json:"metadata,omitempty" db:"metadata"`
	UserID      int64     `json:"userId" db:"user_id"`
	CategoryID  int64     `json:"categoryId" db:"category_id"`
	Likes       int64     `json:"likes" db:"likes"`
	Views       int64     `json:"views" db:"views"`
	Tags        string    `json:"tags,omitempty" db:"tags"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// PhotoWithRelations объединяет фотографию с её автором и категорией
type PhotoWithRelations struct {
	Photo
	User     User     `json:"user"`
	Category Category `json:"category"`
}

// TagList разбирает колонку tags (список через запятую)
func (p *Photo) TagList() []string {
	if p.Tags == "" {
		return nil
	}

	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// Value реализует интерфейс driver.Valuer для сериализации Metadata в JSONB
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan реализует интерфейс sql.Scanner для десериализации JSONB в Metadata
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported metadata type %T", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, m)
}

// Validate проверяет корректность данных фотографии перед записью
func (m *Photo) Validate() error {
	var validationErrors []string

	if len(strings.TrimSpace(m.Title)) < 3 {
		validationErrors = append(validationErrors, "title must be at least 3 characters")
	}
	if m.ImageURL == "" {
		validationErrors = append(validationErrors, "image url is required")
	}
	if m.UserID <= 0 {
		validationErrors = append(validationErrors, "user ID is required")
	}
	if m.CategoryID <= 0 {
		validationErrors = append(validationErrors, "category ID is required")
	}

	if m.Metadata != nil {
		if raw, err := json.Marshal(m.Metadata); err == nil {
			if len(raw) > 1*1024*1024 { // 1MB
				validationErrors = append(validationErrors, "metadata too large (max 1MB)")
			}
		} else {
			validationErrors = append(validationErrors,
				fmt.Sprintf("invalid metadata format: %v", err))
		}
	}

	if len(validationErrors) > 0 {
		return &PhotoValidationError{
			Errors: validationErrors,
		}
	}

	return nil
}

// PhotoValidationError кастомный тип ошибки для валидации
type PhotoValidationError struct {
	Errors []string
}

func (e *PhotoValidationError) Error() string {
	return fmt.Sprintf("photo validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsPhotoValidationError проверяет, является ли ошибка ошибкой валидации,
// в том числе обёрнутой через %w
func IsPhotoValidationError(err error) bool {
	var verr *PhotoValidationError
	return errors.As(err, &verr)
}
