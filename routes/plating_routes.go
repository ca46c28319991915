package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPlatingRoutes(app *fiber.App, db *gorm.DB) {
	platingController := controllers.NewPlatingController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/plating", auth.RequireAuth)

	api.Get("/", platingController.GetAllPlating)
	api.Get("/assembly/:assemblyId", platingController.GetPlatingByAssembly)
	api.Get("/:id", platingController.GetPlatingByID)
	api.Put("/:id", platingController.UpdatePlating)
	api.Post("/:id/complete", platingController.CompletePlating)
}
