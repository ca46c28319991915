package controllers

import (
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB      *gorm.DB
	service *services.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, service: services.NewDashboardService(db)}
}

func (c *DashboardController) GetDashboardData(ctx *fiber.Ctx) error {
	data, err := c.service.GetDashboardData()
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}
