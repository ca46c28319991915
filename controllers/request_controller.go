package controllers

import (
	"inventory-app/services"
	"inventory-app/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RequestController struct {
	DB      *gorm.DB
	service *services.RequestService
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db, service: services.NewRequestService(db)}
}

func (c *RequestController) CreateRequest(ctx *fiber.Ctx) error {
	var input services.RequestInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	request, err := c.service.CreateRequest(actor(ctx), input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Request submitted successfully",
		"data":    fiber.Map{"request_id": request.ID},
	})
}

func (c *RequestController) GetRequests(ctx *fiber.Ctx) error {
	status := ctx.Query("status", string(types.RequestPending))

	requests, err := c.service.ListRequests(actor(ctx), status)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": requests})
}

func (c *RequestController) GetRequestByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	request, err := c.service.GetRequest(actor(ctx), uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": request})
}

func (c *RequestController) ResolveRequest(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var input struct {
		Status     string `json:"status"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.service.Resolve(actor(ctx), uint(id), input.Status, input.AdminNotes); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Request " + input.Status + " successfully",
	})
}
