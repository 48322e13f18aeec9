package dto

import (
	"artlens/internal/domain/models"
)

// ContactInput содержит данные формы обратной связи
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

func (input ContactInput) ToDomain() models.ContactMessage {
	return models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
}
