package controllers

import (
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MoldController struct {
	DB *gorm.DB
}

func NewMoldController(db *gorm.DB) *MoldController {
	return &MoldController{DB: db}
}

func (c *MoldController) GetAllMolds(ctx *fiber.Ctx) error {
	var molds []models.Mold
	if err := c.DB.Order("id").Find(&molds).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": molds})
}
