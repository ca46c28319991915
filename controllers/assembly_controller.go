package controllers

import (
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AssemblyController struct {
	DB      *gorm.DB
	service *services.AssemblyService
}

func NewAssemblyController(db *gorm.DB) *AssemblyController {
	return &AssemblyController{DB: db, service: services.NewAssemblyService(db)}
}

func (c *AssemblyController) GetAllAssemblies(ctx *fiber.Ctx) error {
	assemblies, err := c.service.ListAssemblies(ctx.Query("status", "all"))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": assemblies})
}

func (c *AssemblyController) GetAssemblyByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	assembly, err := c.service.GetAssembly(uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	batches, err := c.service.AssemblyBatches(uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"assembly": assembly, "batches": batches},
	})
}

func (c *AssemblyController) GetAssemblyByGroup(ctx *fiber.Ctx) error {
	groupID, err := ctx.ParamsInt("groupId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid group ID"})
	}

	assembly, err := c.service.GetAssemblyByGroup(uint(groupID))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": assembly})
}

func (c *AssemblyController) CreateAssembly(ctx *fiber.Ctx) error {
	var input services.AssemblyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	assembly, err := c.service.CreateAssembly(actor(ctx), input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Assembly created successfully",
		"data":    assembly,
	})
}

func (c *AssemblyController) UpdateAssembly(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var patch services.AssemblyPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.service.UpdateAssembly(uint(id), patch); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Assembly updated successfully"})
}

func (c *AssemblyController) TransferToPlating(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	plating, err := c.service.TransferToPlating(actor(ctx), uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Assembly transferred to plating",
		"data":    fiber.Map{"plating_id": plating.ID},
	})
}
