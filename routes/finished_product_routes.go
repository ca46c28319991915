package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFinishedProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewFinishedProductController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/finished-products", auth.RequireAuth)

	api.Get("/", productController.GetAllFinishedProducts)
	api.Get("/:id", productController.GetFinishedProductByID)
	api.Post("/", productController.CreateFinishedProduct)
	api.Put("/:id/quality-status", productController.UpdateQualityStatus)
}
