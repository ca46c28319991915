package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/users", auth.RequireAuth)

	api.Get("/", middleware.RequireManager, userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)
	api.Post("/", middleware.RequireManager, userController.CreateUser)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", middleware.RequireAdmin, userController.DeleteUser)
}
