package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "artlens/internal/middleware"
	httprouters "artlens/internal/transport/http"

	_ "artlens/docs"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	uploadsDir string
}

func New(log *slog.Logger, sessionSecret []byte, host, port, uploadsDir string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore(sessionSecret)))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		uploadsDir: uploadsDir,
	}
}

// Handler отдает внутренний echo для httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// resolveIdentity кладет пользователя из cookie-сессии в контекст запроса.
// Отсутствие сессии не ошибка: публичные ручки работают и без неё.
func (s *Server) resolveIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(httprouters.SessionName, c)
		if err != nil {
			return next(c)
		}

		userID, ok := sess.Values["user_id"].(int64)
		if !ok || userID == 0 {
			return next(c)
		}

		user, err := s.routers.UserService.UserByID(c.Request().Context(), userID)
		if err != nil {
			// Протухшая сессия на удаленного пользователя
			return next(c)
		}

		c.Set(httprouters.ContextUserKey, user)

		return next(c)
	}
}

// requireAuth отсекает запросы без разрешенной сессии
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := httprouters.CurrentUser(c); !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	api := s.e.Group("/api", s.resolveIdentity)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.routers.Register)
			auth.POST("/login", s.routers.Login)
			auth.POST("/logout", s.routers.Logout)
			auth.GET("/user", s.routers.AuthUser)
		}

		api.GET("/categories", s.routers.ListCategories)
		api.GET("/categories/:slug", s.routers.GetCategory)
		api.GET("/categories/:slug/photos", s.routers.CategoryPhotos)

		api.GET("/photos", s.routers.ListPhotos)
		api.POST("/photos/upload", s.routers.UploadPhoto)
		api.GET("/photos/:slug", s.routers.GetPhoto)
		api.POST("/photos/:id/like", s.routers.LikePhoto)
		api.POST("/photos/:id/unlike", s.routers.UnlikePhoto)

		api.POST("/contact", s.routers.Contact)

		api.GET("/subscription-plans", s.routers.SubscriptionPlans)

		userGroup := api.Group("/user", s.requireAuth)
		{
			userGroup.GET("/photos", s.routers.UserPhotos)
			userGroup.GET("/subscription", s.routers.UserSubscription)
		}
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	s.e.Static("/uploads", s.uploadsDir)
}
