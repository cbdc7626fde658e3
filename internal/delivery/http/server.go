package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/property-admin/internal/config"
	"github.com/property-admin/internal/delivery/http/handler"
	"github.com/property-admin/internal/delivery/http/middleware"
)

// Server - Fiber HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	authHandler        *handler.AuthHandler
	propertyHandler    *handler.PropertyHandler
	tenantHandler      *handler.TenantHandler
	maintenanceHandler *handler.MaintenanceHandler
	paymentHandler     *handler.PaymentHandler
	messageHandler     *handler.MessageHandler
	appointmentHandler *handler.AppointmentHandler
	filterHandler      *handler.FilterHandler
	mapHandler         *handler.MapHandler
	chatHandler        *handler.ChatHandler
}

// NewServer - wire handlers into the app and register middleware and routes
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	tenantHandler *handler.TenantHandler,
	maintenanceHandler *handler.MaintenanceHandler,
	paymentHandler *handler.PaymentHandler,
	messageHandler *handler.MessageHandler,
	appointmentHandler *handler.AppointmentHandler,
	filterHandler *handler.FilterHandler,
	mapHandler *handler.MapHandler,
	chatHandler *handler.ChatHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Property Administration API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		authHandler:        authHandler,
		propertyHandler:    propertyHandler,
		tenantHandler:      tenantHandler,
		maintenanceHandler: maintenanceHandler,
		paymentHandler:     paymentHandler,
		messageHandler:     messageHandler,
		appointmentHandler: appointmentHandler,
		filterHandler:      filterHandler,
		mapHandler:         mapHandler,
		chatHandler:        chatHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth routes
	api.Post("/auth/login", s.authHandler.Login)
	api.Post("/auth/register", s.authHandler.Register)
	api.Post("/auth/logout", s.authHandler.Logout)
	api.Get("/auth/me", s.authHandler.Me)

	// Property routes
	api.Get("/properties", s.propertyHandler.List)
	api.Post("/properties", s.propertyHandler.Create)
	api.Put("/properties/:id", s.propertyHandler.Update)
	api.Delete("/properties/:id", s.propertyHandler.Delete)

	// Tenant routes
	api.Get("/tenants", s.tenantHandler.List)
	api.Post("/tenants", s.tenantHandler.Create)
	api.Put("/tenants/:id", s.tenantHandler.Update)
	api.Delete("/tenants/:id", s.tenantHandler.Delete)

	// Maintenance routes
	api.Get("/maintenance-requests", s.maintenanceHandler.List)
	api.Post("/maintenance-requests", s.maintenanceHandler.Create)
	api.Put("/maintenance-requests/:id", s.maintenanceHandler.Update)
	api.Delete("/maintenance-requests/:id", s.maintenanceHandler.Delete)

	// Payment routes
	api.Get("/payments", s.paymentHandler.List)
	api.Post("/payments", s.paymentHandler.Create)
	api.Put("/payments/:id", s.paymentHandler.Update)
	api.Delete("/payments/:id", s.paymentHandler.Delete)

	// Message routes
	api.Get("/messages", s.messageHandler.List)
	api.Post("/messages", s.messageHandler.Create)
	api.Put("/messages/:id", s.messageHandler.Update)
	api.Delete("/messages/:id", s.messageHandler.Delete)

	// Appointment routes
	api.Get("/appointments", s.appointmentHandler.List)
	api.Post("/appointments", s.appointmentHandler.Create)
	api.Put("/appointments/:id", s.appointmentHandler.Update)
	api.Delete("/appointments/:id", s.appointmentHandler.Delete)

	// Collection filter routes
	api.Get("/collections/:name/filter", s.filterHandler.Get)
	api.Put("/collections/:name/filter", s.filterHandler.Put)
	api.Delete("/collections/:name/filter", s.filterHandler.Clear)

	// Map routes
	api.Get("/map/markers", s.mapHandler.Markers)
	api.Get("/map/markers/:type/:id", s.mapHandler.Activate)

	// Chat routes
	api.Post("/chat/conversations/:id/messages", s.chatHandler.Send)
	api.Get("/chat/conversations/:id", s.chatHandler.Transcript)
	api.Delete("/chat/conversations/:id", s.chatHandler.Close)
}

// Start - run the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

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
