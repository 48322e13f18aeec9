package dto

import (
	"artlens/internal/domain/models"
)

// PhotoIngestInput содержит загруженный файл и атрибуты фотографии
type PhotoIngestInput struct {
	Data        []byte
	Filename    string
	MimeType    string
	Size        int64
	Title       string
	Description string
	CategoryID  int64
	Tags        string
	IsPremium   bool
	OwnerID     int64
}

// PhotoPage страница списка фотографий с итогами пагинации
type PhotoPage struct {
	Photos []models.PhotoWithRelations `json:"photos"`
	Total  int64                       `json:"total"`
	Pages  int                         `json:"pages"`
}
