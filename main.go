package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"yt-brief/config"
	"yt-brief/handlers"
	"yt-brief/logger"
	"yt-brief/ollama"
	"yt-brief/services/summarize"
	"yt-brief/validation"
	"yt-brief/youtube"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logConfig, err := logger.Init(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize external clients
	transcripts := youtube.NewTranscriptClient(youtube.TranscriptConfig{})
	titles := youtube.NewTitleResolver(youtube.TitleConfig{})
	chat := ollama.NewClient(ollama.Config{Host: cfg.Ollama.Host})

	// Initialize validator and service
	validator := validation.NewValidator()
	service := summarize.NewService(transcripts, titles, chat, validator)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.Debug,
		AppName:               "yt-brief " + cfg.Version,
	})

	setupMiddleware(app, cfg, logConfig)

	// Setup routes
	handler := handlers.NewHandler(service, cfg)

	app.Get("/api/settings", handler.Settings)
	app.Get("/api/models", handler.Models)
	app.Get("/api/prompt", handler.DefaultPrompt)
	app.Post("/api/summarize", handler.Summarize)

	app.Get("/health", handlers.HealthCheck)

	// Static files
	app.Static("/", "./static")

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	serverAddr := ":" + cfg.ServerPort
	if cfg.Debug {
		log.Printf("Server starting on http://localhost%s", serverAddr)
	}

	if err := app.Listen(serverAddr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func setupMiddleware(app *fiber.App, cfg *config.Config, logConfig *fiberLogger.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Debug,
	}))

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	app.Use(fiberLogger.New(*logConfig))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowMethods: strings.Join(cfg.CORS.AllowedMethods, ","),
		AllowHeaders: strings.Join(cfg.CORS.AllowedHeaders, ","),
	}))
}
