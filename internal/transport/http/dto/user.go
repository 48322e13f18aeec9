package dto

import (
	"artlens/internal/domain/models"
)

// UserRegisterInput содержит данные для регистрации пользователя
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
}

func (input UserRegisterInput) ToDomain(passwordHash []byte) models.User {
	return models.User{
		Username: input.Username,
		Password: passwordHash,
		Email:    input.Email,
		Name:     input.Name,
		Bio:      input.Bio,
	}
}

// UserLoginInput содержит учетные данные для входа
type UserLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
