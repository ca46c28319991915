package controllers

import (
	"inventory-app/models"
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MachineController struct {
	DB      *gorm.DB
	service *services.ProductionService
}

func NewMachineController(db *gorm.DB) *MachineController {
	return &MachineController{DB: db, service: services.NewProductionService(db)}
}

func (c *MachineController) GetAllMachines(ctx *fiber.Ctx) error {
	var machines []models.Machine
	if err := c.DB.Order("id").Find(&machines).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": machines})
}

func (c *MachineController) SaveMachineStop(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var input struct {
		Reason   string `json:"reason"`
		StopTime string `json:"stop_time"`
		StopDate string `json:"stop_date"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.service.StopMachine(actor(ctx), uint(id), input.Reason, input.StopTime, input.StopDate); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Machine stop reason saved successfully"})
}

func (c *MachineController) GetStopLogs(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var logs []models.MachineStopLog
	if err := c.DB.Where("machine_id = ?", id).Order("created_at DESC").Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": logs})
}
