package controllers

import (
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductionController struct {
	DB      *gorm.DB
	service *services.ProductionService
}

func NewProductionController(db *gorm.DB) *ProductionController {
	return &ProductionController{DB: db, service: services.NewProductionService(db)}
}

func (c *ProductionController) GetAllProduction(ctx *fiber.Ctx) error {
	runs, err := c.service.ListRuns(ctx.Query("status", "all"))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": runs})
}

func (c *ProductionController) GetProductionByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	run, err := c.service.GetRun(uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": run})
}

func (c *ProductionController) CreateProduction(ctx *fiber.Ctx) error {
	var input services.RunInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	run, err := c.service.CreateRun(actor(ctx), input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Production run created successfully",
		"data":    run,
	})
}

func (c *ProductionController) UpdateProduction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var patch services.RunPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	run, err := c.service.UpdateRun(uint(id), patch)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Production run updated successfully",
		"data":    run,
	})
}

func (c *ProductionController) ArchiveProduction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	if err := c.service.ArchiveRun(uint(id)); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Production run archived successfully"})
}
