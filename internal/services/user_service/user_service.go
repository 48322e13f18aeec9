package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artlens/internal/domain/models"
	"artlens/internal/lib/logger/sl"
	"artlens/internal/repository"
	"artlens/internal/storage"
	"artlens/internal/transport/http/dto"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserService {
	return &UserService{
		log:  log,
		repo: repo,
	}
}

// Register создает нового пользователя. Занятость имени и почты
// проверяется по отдельности, чтобы вернуть точную причину конфликта.
func (s *UserService) Register(ctx context.Context, input dto.UserRegisterInput) (models.User, error) {
	const op = "user_service.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", input.Username),
	)

	log.Info("register user")

	if _, err := s.repo.UserByUsername(ctx, input.Username); err == nil {
		log.Warn("username already taken")

		return models.User{}, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		log.Error("failed to check username", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.UserByEmail(ctx, input.Email); err == nil {
		log.Warn("email already taken")

		return models.User{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		log.Error("failed to check email", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.SaveUser(ctx, input.ToDomain(passHash))
	if err != nil {
		// Гонка между проверкой и вставкой: уникальный индекс решает
		if errors.Is(err, storage.ErrEmailTaken) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		if errors.Is(err, storage.ErrUserExists) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}

		log.Error("failed to save user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))

	return user, nil
}

// Login проверяет учетные данные. Несуществующий пользователь и
// неверный пароль дают одну и ту же ошибку.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	const op = "user_service.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to login user")

	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("user logged in successfully")

	return user, nil
}

func (s *UserService) UserByID(ctx context.Context, id int64) (models.User, error) {
	const op = "user_service.UserByID"

	user, err := s.repo.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
