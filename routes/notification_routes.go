package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB) {
	notificationController := controllers.NewNotificationController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/notifications", auth.RequireAuth)

	api.Get("/", notificationController.GetNotifications)
	api.Get("/unread-count", notificationController.GetUnreadCount)
	api.Put("/read-all", notificationController.MarkAllAsRead)
	api.Put("/:id/read", notificationController.MarkAsRead)
	api.Delete("/clear", notificationController.ClearNotifications)
	api.Delete("/:id", notificationController.DeleteNotification)
}
