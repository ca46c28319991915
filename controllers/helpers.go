package controllers

import (
	"inventory-app/middleware"
	"inventory-app/services"
	"inventory-app/types"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps a workflow error onto the JSON envelope.
func serviceError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(services.StatusOf(err)).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// actor fetches the authenticated actor; the auth middleware guarantees
// it is present on protected routes.
func actor(ctx *fiber.Ctx) types.Actor {
	a, _ := middleware.GetActor(ctx)
	return a
}
