package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/destination-service/internal/config"
	"github.com/destination-service/internal/delivery/http/handler"
	"github.com/destination-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	destinationHandler    *handler.DestinationHandler
	customLocationHandler *handler.CustomLocationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	destinationHandler *handler.DestinationHandler,
	customLocationHandler *handler.CustomLocationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Destination Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                   app,
		config:                cfg,
		logger:                logger,
		destinationHandler:    destinationHandler,
		customLocationHandler: customLocationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
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

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Destination routes
	s.app.Get("/destinations", s.destinationHandler.List)
	s.app.Post("/destinations", s.destinationHandler.Create)
	s.app.Get("/destinations/:id", s.destinationHandler.GetByID)
	s.app.Put("/destinations/:id", s.destinationHandler.Update)
	s.app.Delete("/destinations/:id", s.destinationHandler.Delete)
	s.app.Get("/destinations/:id/:field/:index", s.destinationHandler.GetListItem)
	s.app.Delete("/destinations/:id/:field/:index", s.destinationHandler.RemoveListItem)

	// Custom location routes
	s.app.Get("/custom-locations", s.customLocationHandler.List)
	s.app.Post("/custom-locations", s.customLocationHandler.Create)
	s.app.Get("/custom-locations/:id", s.customLocationHandler.GetByID)
	s.app.Put("/custom-locations/:id", s.customLocationHandler.Update)
	s.app.Delete("/custom-locations/:id", s.customLocationHandler.Delete)
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
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
