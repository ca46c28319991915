package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes registers every API group on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupAuthRoutes(app, db)
	SetupUserRoutes(app, db)
	SetupMaterialRoutes(app, db)
	SetupRequestRoutes(app, db)
	SetupNotificationRoutes(app, db)
	SetupBatchRoutes(app, db)
	SetupProductionRoutes(app, db)
	SetupMachineRoutes(app, db)
	SetupMoldRoutes(app, db)
	SetupAssemblyRoutes(app, db)
	SetupPlatingRoutes(app, db)
	SetupFinishedProductRoutes(app, db)
	SetupDashboardRoutes(app, db)
}
