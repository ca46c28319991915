package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/status", auth.OptionalAuth, authController.Status)
	api.Post("/logout", auth.RequireAuth, authController.Logout)
}
