package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"artlens/internal/domain/models"
	"artlens/internal/lib/logger/sl"
	"artlens/internal/repository"
	"artlens/internal/storage"
	"artlens/internal/transport/http/dto"
	"artlens/internal/transport/http/dto/response"
	userservice "artlens/internal/services/user_service"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName имя cookie-сессии
	SessionName = "artlens_session"

	// SessionMaxAge время жизни сессии: 30 дней
	SessionMaxAge = 30 * 24 * 60 * 60

	// ContextUserKey ключ аутентифицированного пользователя в echo.Context
	ContextUserKey = "user"

	maxUploadBytes = 10 << 20
)

type UserService interface {
	Register(ctx context.Context, input dto.UserRegisterInput) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
}

type PhotoService interface {
	List(ctx context.Context, filter repository.PhotoFilter, page, limit int) (dto.PhotoPage, error)
	ListByCategory(ctx context.Context, categoryID int64, page, limit int) (dto.PhotoPage, error)
	ListByOwner(ctx context.Context, userID int64, page, limit int) (dto.PhotoPage, error)
	GetBySlug(ctx context.Context, slug string) (models.PhotoWithRelations, error)
	Like(ctx context.Context, id int64) (models.PhotoWithRelations, error)
	Unlike(ctx context.Context, id int64) (models.PhotoWithRelations, error)
	Ingest(ctx context.Context, input dto.PhotoIngestInput) (models.Photo, error)
}

type CategoryService interface {
	ListWithCounts(ctx context.Context) ([]models.CategoryWithCount, error)
	BySlug(ctx context.Context, slug string) (models.Category, error)
	InvalidateCounts()
}

type SubscriptionService interface {
	Plans(ctx context.Context) ([]models.SubscriptionPlan, error)
	CurrentForUser(ctx context.Context, userID int64) (*models.SubscriptionWithPlan, error)
}

type ContactService interface {
	Submit(ctx context.Context, input dto.ContactInput) (models.ContactMessage, error)
}

type Routers struct {
	log                 *slog.Logger
	UserService         UserService
	PhotoService        PhotoService
	CategoryService     CategoryService
	SubscriptionService SubscriptionService
	ContactService      ContactService
}

func NewRouter(log *slog.Logger, userService UserService, photoService PhotoService, categoryService CategoryService, subscriptionService SubscriptionService, contactService ContactService) *Routers {
	return &Routers{
		log:                 log,
		UserService:         userService,
		PhotoService:        photoService,
		CategoryService:     categoryService,
		SubscriptionService: subscriptionService,
		ContactService:      contactService,
	}
}

// CurrentUser возвращает пользователя запроса, положенного
// в контекст middleware-ом resolveIdentity
func CurrentUser(c echo.Context) (models.User, bool) {
	user, ok := c.Get(ContextUserKey).(models.User)
	return user, ok
}

func saveLoginSession(c echo.Context, userID int64) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
	}
	sess.Values["user_id"] = userID

	return sess.Save(c.Request(), c.Response())
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создание аккаунта и немедленный вход: сессия выставляется сразу
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UserRegisterInput true "Данные для регистрации"
// @Success 201 {object} map[string]models.User "Созданный пользователь"
// @Failure 400 {object} response.ErrorResponse "Неверные данные или занятые имя/почта"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UserRegisterInput

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(response.MsgInvalidRequestFormat))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ValidationError(err))
	}

	user, err := r.UserService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, userservice.ErrUsernameTaken) {
			log.Warn("username already exists", slog.String("username", req.Username))
			return c.JSON(http.StatusBadRequest, response.Error(response.MsgUsernameExists))
		}
		if errors.Is(err, userservice.ErrEmailTaken) {
			log.Warn("email already exists", slog.String("email", req.Email))
			return c.JSON(http.StatusBadRequest, response.Error(response.MsgEmailExists))
		}

		log.Error("registration failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
	}

	if err := saveLoginSession(c, user.ID); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
	}

	log.Info("user registered successfully", slog.Int64("user_id", user.ID))

	return c.JSON(http.StatusCreated, map[string]models.User{"user": user})
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Вход по имени пользователя и паролю, сессия на 30 дней
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UserLoginInput true "Учетные данные"
// @Success 200 {object} map[string]models.User "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Router /api/auth/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UserLoginInput

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(response.MsgInvalidRequestFormat))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("username", req.Username))
		return c.JSON(http.StatusBadRequest, response.ValidationError(err))
	}

	user, err := r.UserService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.Error(response.MsgInvalidCredentials))
		}

		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
	}

	if err := saveLoginSession(c, user.ID); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
	}

	return c.JSON(http.StatusOK, map[string]models.User{"user": user})
}

// Logout godoc
// @Summary Выход из системы
// @Description Инвалидирует cookie-сессию
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	sess, err := session.Get(SessionName, c)
	if err == nil {
		sess.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		}
		delete(sess.Values, "user_id")

		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Error("failed to clear session", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.Error("Error during logout"))
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": response.MsgLoggedOut})
}

// AuthUser godoc
// @Summary Текущий пользователь
// @Description Возвращает пользователя активной сессии
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]models.User
// @Failure 401 {object} response.ErrorResponse "Сессии нет"
// @Router /api/auth/user [get]
func (r *Routers) AuthUser(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.Error(response.MsgNotAuthenticated))
	}

	return c.JSON(http.StatusOK, map[string]models.User{"user": user})
}

// ListCategories godoc
// @Summary Список категорий
// @Description Категории с количеством фотографий. При недоступности БД отдается фиксированный набор.
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryWithCount
// @Router /api/categories [get]
func (r *Routers) ListCategories(c echo.Context) error {
	const op = "http.routers.ListCategories"

	log := r.log.With(
		slog.String("op", op),
	)

	categories, err := r.CategoryService.ListWithCounts(c.Request().Context())
	if err != nil {
		// Витрина не должна падать вместе с базой
		log.Error("failed to fetch categories, serving fallback", sl.Err(err))
		return c.JSON(http.StatusOK, fallbackCategories)
	}

	if categories == nil {
		categories = []models.CategoryWithCount{}
	}

	return c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Категория по слагу
// @Tags categories
// @Produce json
// @Param slug path string true "Слаг категории"
// @Success 200 {object} models.Category
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/categories/{slug} [get]
func (r *Routers) GetCategory(c echo.Context) error {
	const op = "http.routers.GetCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	category, err := r.CategoryService.BySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.MsgCategoryNotFound))
		}

		log.Error("failed to fetch category", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch category"))
	}

	return c.JSON(http.StatusOK, category)
}

// CategoryPhotos godoc
// @Summary Фотографии категории
// @Tags categories
// @Produce json
// @Param slug path string true "Слаг категории"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(12)
// @Success 200 {object} dto.PhotoPage
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/categories/{slug}/photos [get]
func (r *Routers) CategoryPhotos(c echo.Context) error {
	const op = "http.routers.CategoryPhotos"

	log := r.log.With(
		slog.String("op", op),
	)

	category, err := r.CategoryService.BySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.MsgCategoryNotFound))
		}

		log.Error("failed to fetch category", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch category photos"))
	}

	page, limit := parsePaging(c)

	photos, err := r.PhotoService.ListByCategory(c.Request().Context(), category.ID, page, limit)
	if err != nil {
		log.Error("failed to fetch category photos", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch category photos"))
	}

	return c.JSON(http.StatusOK, photos)
}

// ListPhotos godoc
// @Summary Список фотографий
// @Description Пагинация, фильтр по категории, поиск по подстроке и сортировка (newest, popular, views). При недоступности БД отдается фиксированный набор.
// @Tags photos
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (не более 100)" default(12)
// @Param category query int false "ID категории"
// @Param search query string false "Подстрока для поиска в названии, описании и тегах"
// @Param sortBy query string false "Сортировка" Enums(newest, popular, views)
// @Success 200 {object} dto.PhotoPage
// @Router /api/photos [get]
func (r *Routers) ListPhotos(c echo.Context) error {
	const op = "http.routers.ListPhotos"

	log := r.log.With(
		slog.String("op", op),
	)

	page, limit := parsePaging(c)

	filter := repository.PhotoFilter{
		SearchTerm: c.QueryParam("search"),
		SortBy:     c.QueryParam("sortBy"),
	}

	if categoryStr := c.QueryParam("category"); categoryStr != "" {
		if categoryID, err := strconv.ParseInt(categoryStr, 10, 64); err == nil {
			filter.CategoryID = &categoryID
		}
	}

	photos, err := r.PhotoService.List(c.Request().Context(), filter, page, limit)
	if err != nil {
		log.Error("failed to fetch photos, serving fallback", sl.Err(err))
		return c.JSON(http.StatusOK, fallbackPhotos)
	}

	return c.JSON(http.StatusOK, photos)
}

// GetPhoto godoc
// @Summary Фотография по слагу
// @Description Возвращает фотографию с автором и категорией, фиксируя просмотр
// @Tags photos
// @Produce json
// @Param slug path string true "Слаг фотографии"
// @Success 200 {object} models.PhotoWithRelations
// @Failure 404 {object} response.ErrorResponse "Фотография не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/photos/{slug} [get]
func (r *Routers) GetPhoto(c echo.Context) error {
	const op = "http.routers.GetPhoto"

	log := r.log.With(
		slog.String("op", op),
	)

	photo, err := r.PhotoService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.MsgPhotoNotFound))
		}

		log.Error("failed to fetch photo", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch photo"))
	}

	return c.JSON(http.StatusOK, photo)
}

// UploadPhoto godoc
// @Summary Загрузка фотографии
// @Description Принимает multipart-форму, обрабатывает изображение (вписывание в 1920x1080, JPEG q80) и создает запись
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Файл изображения (JPEG/PNG/GIF, макс. 10MB)"
// @Param title formData string true "Название (мин. 3 символа)"
// @Param description formData string false "Описание"
// @Param categoryId formData integer true "ID категории"
// @Param tags formData string false "Теги через запятую"
// @Param isPremium formData boolean false "Премиум-доступ (только для вошедших)"
// @Success 201 {object} models.Photo
// @Failure 400 {object} response.ErrorResponse "Нет файла, файл слишком большой, неверный тип или атрибуты"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/photos/upload [post]
func (r *Routers) UploadPhoto(c echo.Context) error {
	const op = "http.routers.UploadPhoto"

	log := r.log.With(
		slog.String("op", op),
	)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(response.MsgNoPhotoUploaded))
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("failed to open uploaded file", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to upload photo"))
	}
	defer src.Close()

	// Лишний байт сверх лимита превращается в ошибку размера в сервисе
	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		log.Error("failed to read uploaded file", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to upload photo"))
	}

	input, err := r.parsePhotoIngestInput(c, fileHeader.Filename, data)
	if err != nil {
		log.Warn("error parsing form data", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	input.MimeType = mimeType

	log.Debug("got file for upload",
		slog.String("filename", fileHeader.Filename),
		slog.Int("size", len(data)),
		slog.String("mime_type", mimeType),
	)

	photo, err := r.PhotoService.Ingest(c.Request().Context(), *input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.JSON(http.StatusBadRequest, response.Error("File size exceeds the 10MB limit"))
		case errors.Is(err, storage.ErrInvalidFileType):
			return c.JSON(http.StatusBadRequest, response.Error("Only JPG, PNG, and GIF files are allowed"))
		case errors.Is(err, storage.ErrCategoryNotFound):
			return c.JSON(http.StatusBadRequest, response.Error(response.MsgCategoryNotFound))
		case models.IsPhotoValidationError(err):
			return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		}

		log.Error("failed to upload photo", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to upload photo"))
	}

	// Счетчики фотографий в категориях устарели
	r.CategoryService.InvalidateCounts()

	log.Info("upload successful",
		slog.Int64("photo_id", photo.ID),
		slog.String("slug", photo.Slug),
	)

	return c.JSON(http.StatusCreated, photo)
}

func (r *Routers) parsePhotoIngestInput(c echo.Context, filename string, data []byte) (*dto.PhotoIngestInput, error) {
	categoryID, err := strconv.ParseInt(c.FormValue("categoryId"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid category ID")
	}

	input := &dto.PhotoIngestInput{
		Data:        data,
		Filename:    filename,
		Size:        int64(len(data)),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		CategoryID:  categoryID,
		Tags:        c.FormValue("tags"),
	}

	// Анонимные загрузки записываются на служебного пользователя
	// и не могут быть премиумом
	input.OwnerID = 1
	if user, ok := CurrentUser(c); ok {
		input.OwnerID = user.ID
		input.IsPremium = c.FormValue("isPremium") == "true"
	}

	return input, nil
}

// LikePhoto godoc
// @Summary Лайк фотографии
// @Description Увеличивает счетчик лайков и возвращает обновленную фотографию
// @Tags photos
// @Produce json
// @Param id path int true "ID фотографии"
// @Success 200 {object} models.PhotoWithRelations
// @Failure 400 {object} response.ErrorResponse "Невалидный ID"
// @Failure 404 {object} response.ErrorResponse "Фотография не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/photos/{id}/like [post]
func (r *Routers) LikePhoto(c echo.Context) error {
	const op = "http.routers.LikePhoto"

	return r.mutateLikes(c, op, r.PhotoService.Like, "Failed to like photo")
}

// UnlikePhoto godoc
// @Summary Снятие лайка
// @Description Уменьшает счетчик лайков; ниже нуля счетчик не опускается
// @Tags photos
// @Produce json
// @Param id path int true "ID фотографии"
// @Success 200 {object} models.PhotoWithRelations
// @Failure 400 {object} response.ErrorResponse "Невалидный ID"
// @Failure 404 {object} response.ErrorResponse "Фотография не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/photos/{id}/unlike [post]
func (r *Routers) UnlikePhoto(c echo.Context) error {
	const op = "http.routers.UnlikePhoto"

	return r.mutateLikes(c, op, r.PhotoService.Unlike, "Failed to unlike photo")
}

func (r *Routers) mutateLikes(c echo.Context, op string, mutate func(context.Context, int64) (models.PhotoWithRelations, error), failMsg string) error {
	log := r.log.With(
		slog.String("op", op),
	)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid photo ID"))
	}

	photo, err := mutate(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			return c.JSON(http.StatusNotFound, response.Error(response.MsgPhotoNotFound))
		}

		log.Error("failed to mutate likes", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(failMsg))
	}

	return c.JSON(http.StatusOK, photo)
}

// Contact godoc
// @Summary Сообщение обратной связи
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactInput true "Данные формы"
// @Success 201 {object} map[string]interface{} "Подтверждение с ID сообщения"
// @Failure 400 {object} response.ErrorResponse "Ошибки валидации"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/contact [post]
func (r *Routers) Contact(c echo.Context) error {
	const op = "http.routers.Contact"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ContactInput

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(response.MsgInvalidRequestFormat))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ValidationError(err))
	}

	msg, err := r.ContactService.Submit(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to send contact message", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to send message"))
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": response.MsgMessageSent,
		"id":      msg.ID,
	})
}

// SubscriptionPlans godoc
// @Summary Тарифные планы
// @Description Планы по возрастанию месячной цены
// @Tags subscriptions
// @Produce json
// @Success 200 {array} models.SubscriptionPlan
// @Failure 500 {object} response.ErrorResponse
// @Router /api/subscription-plans [get]
func (r *Routers) SubscriptionPlans(c echo.Context) error {
	const op = "http.routers.SubscriptionPlans"

	log := r.log.With(
		slog.String("op", op),
	)

	plans, err := r.SubscriptionService.Plans(c.Request().Context())
	if err != nil {
		log.Error("failed to fetch plans", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch subscription plans"))
	}

	if plans == nil {
		plans = []models.SubscriptionPlan{}
	}

	return c.JSON(http.StatusOK, plans)
}

// UserPhotos godoc
// @Summary Фотографии текущего пользователя
// @Tags user
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(12)
// @Success 200 {object} dto.PhotoPage
// @Failure 401 {object} response.ErrorResponse "Сессии нет"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/user/photos [get]
func (r *Routers) UserPhotos(c echo.Context) error {
	const op = "http.routers.UserPhotos"

	log := r.log.With(
		slog.String("op", op),
	)

	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
	}

	page, limit := parsePaging(c)

	photos, err := r.PhotoService.ListByOwner(c.Request().Context(), user.ID, page, limit)
	if err != nil {
		log.Error("failed to fetch user photos", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch user photos"))
	}

	return c.JSON(http.StatusOK, photos)
}

// UserSubscription godoc
// @Summary Подписка текущего пользователя
// @Description Возвращает действующую подписку с планом или null (free tier)
// @Tags user
// @Produce json
// @Success 200 {object} models.SubscriptionWithPlan
// @Failure 401 {object} response.ErrorResponse "Сессии нет"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/user/subscription [get]
func (r *Routers) UserSubscription(c echo.Context) error {
	const op = "http.routers.UserSubscription"

	log := r.log.With(
		slog.String("op", op),
	)

	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
	}

	sub, err := r.SubscriptionService.CurrentForUser(c.Request().Context(), user.ID)
	if err != nil {
		log.Error("failed to fetch subscription", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch subscription"))
	}

	return c.JSON(http.StatusOK, sub)
}

func parsePaging(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}
