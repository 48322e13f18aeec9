package models

import "time"

// Category представляет тематическую категорию фотографий
type Category struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description,omitempty" db:"description"`
	CoverImage  string    `json:"coverImage,omitempty" db:"cover_image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryWithCount объединяет категорию и количество фотографий в ней.
// Ключи ответа совпадают с колонками агрегирующего запроса.
type CategoryWithCount struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description,omitempty" db:"description"`
	CoverImage  string `json:"cover_image,omitempty" db:"cover_image"`
	PhotoCount  int64  `json:"photo_count" db:"photo_count"`
}
