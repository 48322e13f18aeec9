package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"artlens/internal/domain/models"
	"artlens/internal/storage"
	"artlens/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	log := slog.Default()

	service := NewUserService(log, mockRepo)

	testUsername := "testuser"
	testPassword := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	testUser := models.User{
		ID:       1,
		Username: testUsername,
		Password: hashedPassword,
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testUsername).Return(testUser, nil).Once()

		user, err := service.Login(ctx, testUsername, testPassword)
		require.NoError(t, err)
		assert.Equal(t, testUser.ID, user.ID)
	})

	t.Run("invalid password", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testUsername).Return(testUser, nil).Once()

		_, err := service.Login(ctx, testUsername, "wrong_password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, "nonexistent").
			Return(models.User{}, storage.ErrUserNotFound).Once()

		// Несуществующий пользователь неотличим от неверного пароля
		_, err := service.Login(ctx, "nonexistent", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testUsername).
			Return(models.User{}, errors.New("db error")).Once()

		_, err := service.Login(ctx, testUsername, testPassword)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	log := slog.Default()
	service := NewUserService(log, mockRepo)

	testInput := dto.UserRegisterInput{
		Username: "newuser",
		Password: "password123",
		Email:    "new@example.com",
		Name:     "New User",
	}

	t.Run("successful registration", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testInput.Username).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("UserByEmail", ctx, testInput.Email).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("SaveUser", ctx, mock.AnythingOfType("models.User")).
			Return(models.User{ID: 42, Username: testInput.Username}, nil).Once()

		user, err := service.Register(ctx, testInput)
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
	})

	t.Run("password is hashed before save", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testInput.Username).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("UserByEmail", ctx, testInput.Email).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
			return bcrypt.CompareHashAndPassword(u.Password, []byte(testInput.Password)) == nil
		})).Return(models.User{ID: 43}, nil).Once()

		_, err := service.Register(ctx, testInput)
		require.NoError(t, err)
	})

	t.Run("username already taken", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testInput.Username).
			Return(models.User{ID: 1, Username: testInput.Username}, nil).Once()

		_, err := service.Register(ctx, testInput)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("email already taken", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testInput.Username).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("UserByEmail", ctx, testInput.Email).
			Return(models.User{ID: 2, Email: testInput.Email}, nil).Once()

		_, err := service.Register(ctx, testInput)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("insert race maps unique violation", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testInput.Username).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("UserByEmail", ctx, testInput.Email).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("SaveUser", ctx, mock.Anything).
			Return(models.User{}, storage.ErrEmailTaken).Once()

		_, err := service.Register(ctx, testInput)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.On("UserByUsername", ctx, testInput.Username).
			Return(models.User{}, errors.New("db error")).Once()

		_, err := service.Register(ctx, testInput)
		assert.ErrorContains(t, err, "db error")
	})

	t.Run("too long password", func(t *testing.T) {
		// bcrypt не принимает пароли длиннее 72 байт
		longPassInput := testInput
		longPassInput.Password = string(make([]byte, 100))

		mockRepo.On("UserByUsername", ctx, longPassInput.Username).
			Return(models.User{}, storage.ErrUserNotFound).Once()
		mockRepo.On("UserByEmail", ctx, longPassInput.Email).
			Return(models.User{}, storage.ErrUserNotFound).Once()

		_, err := service.Register(ctx, longPassInput)
		assert.Error(t, err)
	})
}

func TestUserService_UserByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	log := slog.Default()
	service := NewUserService(log, mockRepo)

	t.Run("user found", func(t *testing.T) {
		mockRepo.On("UserByID", ctx, int64(1)).
			Return(models.User{ID: 1, Username: "testuser"}, nil).Once()

		user, err := service.UserByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.On("UserByID", ctx, int64(99)).
			Return(models.User{}, storage.ErrUserNotFound).Once()

		_, err := service.UserByID(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
