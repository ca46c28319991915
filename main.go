package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	// Pastikan database ada
	config.EnsureDatabaseExists(config.DBName)

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)

	idgen.Init()

	// Setup CORS middleware
	config.SetupCORS(app)

	routes.SetupRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
