package services

import (
	"context"
	"fmt"
	"log/slog"

	"artlens/internal/domain/models"
	"artlens/internal/lib/logger/sl"
	"artlens/internal/repository"
	"artlens/internal/transport/http/dto"
)

type ContactService struct {
	log  *slog.Logger
	repo repository.ContactRepository
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository) *ContactService {
	return &ContactService{
		log:  log,
		repo: repo,
	}
}

func (s *ContactService) Submit(ctx context.Context, input dto.ContactInput) (models.ContactMessage, error) {
	const op = "contact_service.Submit"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", input.Email),
	)

	msg, err := s.repo.SaveMessage(ctx, input.ToDomain())
	if err != nil {
		log.Error("failed to save contact message", sl.Err(err))

		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact message saved", slog.Int64("message_id", msg.ID))

	return msg, nil
}

// Messages возвращает страницу сообщений для админки
func (s *ContactService) Messages(ctx context.Context, status string, page, limit int) ([]models.ContactMessage, int64, error) {
	const op = "contact_service.Messages"

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	messages, total, err := s.repo.ListMessages(ctx, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return messages, total, nil
}

func (s *ContactService) MarkStatus(ctx context.Context, id int64, status string) error {
	const op = "contact_service.MarkStatus"

	if err := s.repo.UpdateMessageStatus(ctx, id, status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
