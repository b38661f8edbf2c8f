package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"usc-ai-assistant/internal/config"
	"usc-ai-assistant/internal/handlers"
	"usc-ai-assistant/internal/logger"
	"usc-ai-assistant/internal/models"
	"usc-ai-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
	})
	logger.Info().Str("env", cfg.Server.Env).Msg("Config loaded")

	if cfg.OpenRouter.APIKey == "" {
		logger.Warn().Msg("OPENROUTER_API_KEY is not set; chat requests will return the generic fallback")
	}

	// Initialize services
	profileService := services.NewProfileService()
	openRouterClient := services.NewOpenRouterClient(cfg.OpenRouter)
	chatService := services.NewChatService(openRouterClient, cfg.OpenRouter.Model)

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "USC AI Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/upload-profile", profileHandler.HandleUploadProfile)
	api.Post("/chat", chatHandler.HandleChat)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "USC AI Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/upload-profile",
				"POST /api/chat",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.APIResponse{
		Success: false,
		Message: "Internal server error",
	})
}
