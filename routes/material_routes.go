package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMaterialRoutes(app *fiber.App, db *gorm.DB) {
	materialController := controllers.NewMaterialController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/materials", auth.RequireAuth)

	api.Get("/", materialController.GetAllMaterials)
	api.Get("/export", materialController.ExportMaterials)
	api.Get("/:id", materialController.GetMaterialByID)

	// Direct mutations bypass the request workflow, so they stay behind
	// the privileged roles. Regular users go through material-requests.
	api.Post("/", middleware.RequireManager, materialController.CreateMaterial)
	api.Put("/:id", middleware.RequireManager, materialController.UpdateMaterial)
	api.Delete("/:id", middleware.RequireManager, materialController.DeleteMaterial)
	api.Delete("/", middleware.RequireManager, materialController.BulkDeleteMaterials)
}
