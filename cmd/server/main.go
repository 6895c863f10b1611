package main

import (
	"log"

	"github.com/JacobDishman/IS-403-Project/internal/config"
	"github.com/JacobDishman/IS-403-Project/internal/database"
	"github.com/JacobDishman/IS-403-Project/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "cal-endure",
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/uploads", cfg.UploadDir)

	routes.Setup(app)

	log.Printf("Server listening on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
