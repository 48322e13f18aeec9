package http

import (
	"artlens/internal/domain/models"
	"artlens/internal/transport/http/dto"
)

// Фиксированные наборы данных на случай недоступности БД.
// Списки категорий и фотографий отдаются с ними и статусом 200,
// чтобы витрина не падала вместе с базой.

var fallbackCategories = []models.CategoryWithCount{
	{
		ID:          1,
		Name:        "Landscapes",
		Slug:        "landscapes",
		Description: "Beautiful landscape photography from around the world",
		CoverImage:  "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=800&q=80",
		PhotoCount:  24,
	},
	{
		ID:          2,
		Name:        "Portraits",
		Slug:        "portraits",
		Description: "Stunning portrait photography capturing human emotion",
		CoverImage:  "https://images.unsplash.com/photo-1517070208541-6ddc4d3efbcb?auto=format&fit=crop&w=800&q=80",
		PhotoCount:  18,
	},
	{
		ID:          3,
		Name:        "Wildlife",
		Slug:        "wildlife",
		Description: "Captivating wildlife photography from nature's realm",
		CoverImage:  "https://images.unsplash.com/photo-1512790182412-b19e6d62bc39?auto=format&fit=crop&w=800&q=80",
		PhotoCount:  12,
	},
	{
		ID:          4,
		Name:        "Urban",
		Slug:        "urban",
		Description: "Urban photography showcasing city life and architecture",
		CoverImage:  "https://images.unsplash.com/photo-1473893604213-3df9c15cf957?auto=format&fit=crop&w=800&q=80",
		PhotoCount:  16,
	},
	{
		ID:          5,
		Name:        "Nature",
		Slug:        "nature",
		Description: "Amazing shots of natural wonders and scenic views",
		CoverImage:  "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=800&q=80",
		PhotoCount:  22,
	},
	{
		ID:          6,
		Name:        "Abstract",
		Slug:        "abstract",
		Description: "Creative abstract photography and artistic compositions",
		CoverImage:  "https://images.unsplash.com/photo-1541356665065-22676f35dd40?auto=format&fit=crop&w=800&q=80",
		PhotoCount:  14,
	},
}

func fallbackPhoto(id int64, title, slug, description, imageURL string, views, likes, categoryID, userID int64, userName string) models.PhotoWithRelations {
	return models.PhotoWithRelations{
		Photo: models.Photo{
			ID:          id,
			Title:       title,
			Slug:        slug,
			Description: description,
			ImageURL:    imageURL,
			Views:       views,
			Likes:       likes,
			CategoryID:  categoryID,
			UserID:      userID,
		},
		User: models.User{ID: userID, Name: userName},
	}
}

var fallbackPhotos = dto.PhotoPage{
	Photos: []models.PhotoWithRelations{
		fallbackPhoto(1, "Mountain Sunset", "mountain-sunset",
			"A beautiful sunset view over the mountains",
			"https://images.unsplash.com/photo-1605973029521-8154da591bd7?auto=format&fit=crop&w=1000&q=80",
			324, 42, 1, 1, "John Photographer"),
		fallbackPhoto(2, "Ocean Waves", "ocean-waves",
			"Powerful ocean waves crashing against the shore",
			"https://images.unsplash.com/photo-1533760881669-80db4d7b341a?auto=format&fit=crop&w=1000&q=80",
			218, 36, 5, 2, "Sarah Naturalist"),
		fallbackPhoto(3, "Urban Architecture", "urban-architecture",
			"Modern urban architecture with glass and steel",
			"https://images.unsplash.com/photo-1486325212027-8081e485255e?auto=format&fit=crop&w=1000&q=80",
			175, 28, 4, 3, "Alex Cityscape"),
		fallbackPhoto(4, "Forest Pathway", "forest-pathway",
			"A serene pathway through a dense forest",
			"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=1000&q=80",
			283, 47, 5, 1, "John Photographer"),
		fallbackPhoto(5, "Wildlife Safari", "wildlife-safari",
			"Majestic lion in the African savanna",
			"https://images.unsplash.com/photo-1546182990-dffeafbe841d?auto=format&fit=crop&w=1000&q=80",
			342, 56, 3, 2, "Sarah Naturalist"),
		fallbackPhoto(6, "Abstract Art", "abstract-art",
			"Colorful abstract art composition",
			"https://images.unsplash.com/photo-1553356084-58ef4a67b2a7?auto=format&fit=crop&w=1000&q=80",
			198, 33, 6, 3, "Alex Cityscape"),
	},
	Total: 6,
	Pages: 1,
}
