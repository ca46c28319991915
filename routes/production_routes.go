package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductionRoutes(app *fiber.App, db *gorm.DB) {
	productionController := controllers.NewProductionController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/production", auth.RequireAuth)

	api.Get("/", productionController.GetAllProduction)
	api.Get("/:id", productionController.GetProductionByID)
	api.Post("/", productionController.CreateProduction)
	api.Put("/:id", productionController.UpdateProduction)
	api.Delete("/:id", productionController.ArchiveProduction)
	api.Put("/:id/archive", productionController.ArchiveProduction)
}

func SetupMachineRoutes(app *fiber.App, db *gorm.DB) {
	machineController := controllers.NewMachineController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/machines", auth.RequireAuth)

	api.Get("/", machineController.GetAllMachines)
	api.Get("/:id/stop-logs", machineController.GetStopLogs)
	api.Post("/:id/stop", machineController.SaveMachineStop)
}

func SetupMoldRoutes(app *fiber.App, db *gorm.DB) {
	moldController := controllers.NewMoldController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/molds", auth.RequireAuth)

	api.Get("/", moldController.GetAllMolds)
}
