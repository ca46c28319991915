package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBatchRoutes(app *fiber.App, db *gorm.DB) {
	batchController := controllers.NewBatchController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/batches", auth.RequireAuth)

	api.Get("/", batchController.GetAllBatches)
	api.Get("/ungrouped", batchController.GetUngroupedBatches)
	api.Get("/grouped", batchController.GetGroupedBatches)
	api.Get("/groups/:id/members", batchController.GetGroupMembers)
	api.Get("/:id", batchController.GetBatchByID)
	api.Post("/", batchController.CreateBatch)
	api.Post("/upload", batchController.CreateBatchFromExcel)
	api.Post("/group", batchController.GroupBatches)
	api.Put("/:id/status", batchController.UpdateBatchStatus)
}
