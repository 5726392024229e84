package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hypergym/hypergym/internal/api"
	"github.com/hypergym/hypergym/internal/db"
	"github.com/hypergym/hypergym/internal/media"
	"github.com/hypergym/hypergym/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "hypergym.db"))
	port := getEnv("PORT", "8080")
	demoPassword := getEnv("DEMO_PASSWORD", "password123")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if err := db.SeedDefaults(database, demoPassword); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	captions := services.NewCaptionService(buildCaptionGenerator())
	handler := api.NewHandler(database, []byte(secretKey), captions, buildUploader())

	app := fiber.New(fiber.Config{
		AppName:               "HyperGym",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("HyperGym listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildCaptionGenerator returns nil when no API key is configured;
// captions then fall back to canned text instead of failing requests.
func buildCaptionGenerator() services.CaptionGenerator {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, caption generation disabled")
		return nil
	}
	generator, err := services.NewGeminiCaptionGenerator(context.Background(), apiKey)
	if err != nil {
		log.Printf("caption generator init failed, captions disabled: %v", err)
		return nil
	}
	return generator
}

// buildUploader returns nil when Cloudinary is not configured; the
// upload endpoints then answer 503.
func buildUploader() *media.Uploader {
	uploader, err := media.NewUploader(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("media uploads disabled: %v", err)
		return nil
	}
	return uploader
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
