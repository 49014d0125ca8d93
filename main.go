package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/tuchonga/tuchonga-api/internal/config"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/logger"
	"github.com/tuchonga/tuchonga-api/internal/middleware"
	"github.com/tuchonga/tuchonga-api/internal/routes"
	"github.com/tuchonga/tuchonga-api/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := database.Connect(cfg); err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	services.InitFeed(database.DB, log)

	app := fiber.New(fiber.Config{AppName: "tuchonga-api"})
	app.Use(middleware.RequestLogger(log))
	routes.Setup(app)

	log.Info("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
