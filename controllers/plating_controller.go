package controllers

import (
	"inventory-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlatingController struct {
	DB      *gorm.DB
	service *services.PlatingService
}

func NewPlatingController(db *gorm.DB) *PlatingController {
	return &PlatingController{DB: db, service: services.NewPlatingService(db)}
}

func (c *PlatingController) GetAllPlating(ctx *fiber.Ctx) error {
	rows, err := c.service.ListPlating()
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": rows})
}

func (c *PlatingController) GetPlatingByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	row, err := c.service.GetPlating(uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": row})
}

func (c *PlatingController) GetPlatingByAssembly(ctx *fiber.Ctx) error {
	assemblyID, err := ctx.ParamsInt("assemblyId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid assembly ID"})
	}

	row, err := c.service.GetPlatingByAssembly(uint(assemblyID))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": row})
}

func (c *PlatingController) UpdatePlating(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var patch services.PlatingPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.service.UpdatePlating(uint(id), patch); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plating record updated successfully"})
}

func (c *PlatingController) CompletePlating(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	if err := c.service.CompletePlating(actor(ctx), uint(id)); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plating completed successfully"})
}
