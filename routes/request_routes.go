package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRequestRoutes(app *fiber.App, db *gorm.DB) {
	requestController := controllers.NewRequestController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/material-requests", auth.RequireAuth)

	api.Get("/", requestController.GetRequests)
	api.Get("/:id", requestController.GetRequestByID)
	api.Post("/", requestController.CreateRequest)
	api.Put("/:id", middleware.RequireManager, requestController.ResolveRequest)
}
