package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/address-navigator/internal/config"
	"github.com/address-navigator/internal/delivery/http/handler"
	"github.com/address-navigator/internal/delivery/http/middleware"
	appErrors "github.com/address-navigator/internal/pkg/errors"
	"github.com/address-navigator/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	addressPageHandler *handler.AddressPageHandler
	addressHandler     *handler.AddressHandler
	healthHandler      *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	addressPageHandler *handler.AddressPageHandler,
	addressHandler *handler.AddressHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Address Navigator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		addressPageHandler: addressPageHandler,
		addressHandler:     addressHandler,
		healthHandler:      healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Address search page
	s.app.Get("/", s.addressPageHandler.ShowSearchForm)
	s.app.Post("/", s.addressPageHandler.SubmitSearchForm)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)
	api.Get("/addresses", s.addressHandler.Search)
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		path := fiberutils.CopyString(c.Path())
		appErr := appErrors.New(appErrors.ErrInternalServer.Code, err.Error(), fiber.StatusInternalServerError)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			appErr.StatusCode = fe.Code
			if fe.Code == fiber.StatusNotFound {
				appErr = appErrors.ErrNotFound.WithDetails(map[string]interface{}{
					"path": path,
				})
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", path),
			zap.Int("status", appErr.StatusCode),
			zap.Error(err),
		)

		return utils.SendError(c, appErr)
	}
}
