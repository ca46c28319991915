package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAssemblyRoutes(app *fiber.App, db *gorm.DB) {
	assemblyController := controllers.NewAssemblyController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/assemblies", auth.RequireAuth)

	api.Get("/", assemblyController.GetAllAssemblies)
	api.Get("/group/:groupId", assemblyController.GetAssemblyByGroup)
	api.Get("/:id", assemblyController.GetAssemblyByID)
	api.Post("/", assemblyController.CreateAssembly)
	api.Put("/:id", assemblyController.UpdateAssembly)
	api.Post("/:id/transfer-to-plating", assemblyController.TransferToPlating)
}
