package models

import (
	"time"
)

// User представляет пользователя галереи
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Password     []byte    `json:"-" db:"password"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name,omitempty" db:"name"`
	ProfileImage string    `json:"profileImage,omitempty" db:"profile_image"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
