package storage

import "errors"

var (
	ErrUserExists       = errors.New("user already exists")
	ErrEmailTaken       = errors.New("email already taken")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrSlugTaken        = errors.New("slug already taken")
	ErrPlanNotFound     = errors.New("subscription plan not found")
	ErrNoActivePlan     = errors.New("no active subscription")
	ErrMessageNotFound  = errors.New("contact message not found")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
