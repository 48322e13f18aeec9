package app

import (
	"context"
	"log/slog"

	httpapp "artlens/internal/app/http"
	"artlens/internal/config"
	"artlens/internal/repository"
	categoryservice "artlens/internal/services/category_service"
	contactservice "artlens/internal/services/contact_service"
	photoservice "artlens/internal/services/photo_service"
	subscriptionservice "artlens/internal/services/subscription_service"
	userservice "artlens/internal/services/user_service"
	filestorage "artlens/internal/storage/filestorage"
	"artlens/internal/storage/postgresql"
	httprouters "artlens/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Storage    *postgresql.Storage
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	if err := storage.Migrate(context.Background()); err != nil {
		panic(err)
	}

	if err := storage.Seed(context.Background()); err != nil {
		panic(err)
	}

	repo := repository.NewRepository(storage.DB())

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	userService := userservice.NewUserService(log, repo.User)
	categoryService := categoryservice.NewCategoryService(log, repo.Category)
	photoService := photoservice.NewPhotoService(log, repo.Photo, repo.Category, fileStorage)
	subscriptionService := subscriptionservice.NewSubscriptionService(log, repo.Subscription)
	contactService := contactservice.NewContactService(log, repo.Contact)

	routers := httprouters.NewRouter(log, userService, photoService, categoryService, subscriptionService, contactService)

	server := httpapp.New(log, []byte(cfg.Session.Secret), cfg.HTTP.Host, cfg.HTTP.Port, cfg.FileStorage.BaseDir, routers)

	return &App{
		HTTPServer: server,
		Storage:    storage,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		panic(err)
	}

	a.Storage.Stop()
}
