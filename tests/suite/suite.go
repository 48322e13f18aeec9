package suite

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	httpapp "artlens/internal/app/http"
	"artlens/internal/repository"
	categoryservice "artlens/internal/services/category_service"
	contactservice "artlens/internal/services/contact_service"
	photoservice "artlens/internal/services/photo_service"
	subscriptionservice "artlens/internal/services/subscription_service"
	userservice "artlens/internal/services/user_service"
	filestorage "artlens/internal/storage/filestorage"
	"artlens/internal/storage/postgresql"
	httprouters "artlens/internal/transport/http"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Suite поднимает полный стек против одноразового постгреса в контейнере
type Suite struct {
	*testing.T
	BaseURL string
	Client  *http.Client
	Storage *postgresql.Storage
	Repo    *repository.Repository
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancelCtx := context.WithTimeout(context.Background(), 5*time.Minute)
	t.Cleanup(cancelCtx)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	dsn := setupTestDB(t, ctx)

	storage, err := postgresql.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(storage.Stop)

	require.NoError(t, storage.Migrate(ctx))
	require.NoError(t, storage.Seed(ctx))

	repo := repository.NewRepository(storage.DB())

	uploadsDir := t.TempDir()
	fileStorage, err := filestorage.NewLocalFileStorage(uploadsDir, "/uploads")
	require.NoError(t, err)

	userService := userservice.NewUserService(log, repo.User)
	categoryService := categoryservice.NewCategoryService(log, repo.Category)
	photoService := photoservice.NewPhotoService(log, repo.Photo, repo.Category, fileStorage)
	subscriptionService := subscriptionservice.NewSubscriptionService(log, repo.Subscription)
	contactService := contactservice.NewContactService(log, repo.Contact)

	routers := httprouters.NewRouter(log, userService, photoService, categoryService, subscriptionService, contactService)

	server := httpapp.New(log, []byte("test-session-secret"), "localhost", "0", uploadsDir, routers)
	server.BuildRouters()

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return ctx, &Suite{
		T:       t,
		BaseURL: ts.URL,
		Client:  &http.Client{Jar: jar},
		Storage: storage,
		Repo:    repo,
	}
}

func setupTestDB(t *testing.T, ctx context.Context) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())
}
