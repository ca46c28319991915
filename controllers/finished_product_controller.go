package controllers

import (
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FinishedProductController struct {
	DB      *gorm.DB
	service *services.ProductService
}

func NewFinishedProductController(db *gorm.DB) *FinishedProductController {
	return &FinishedProductController{DB: db, service: services.NewProductService(db)}
}

func (c *FinishedProductController) GetAllFinishedProducts(ctx *fiber.Ctx) error {
	products, err := c.service.ListFinishedProducts()
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": products})
}

func (c *FinishedProductController) GetFinishedProductByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	product, history, err := c.service.GetFinishedProduct(uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"product": product, "history": history},
	})
}

func (c *FinishedProductController) CreateFinishedProduct(ctx *fiber.Ctx) error {
	var input services.FinishedProductInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	product, err := c.service.CreateFinishedProduct(actor(ctx), input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Finished product created successfully",
		"data":    product,
	})
}

func (c *FinishedProductController) UpdateQualityStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var input services.QualityCheckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	check, err := c.service.RecordQualityCheck(actor(ctx), uint(id), input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Quality status updated successfully",
		"data":    check,
	})
}
