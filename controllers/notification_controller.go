package controllers

import (
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func (c *NotificationController) GetNotifications(ctx *fiber.Ctx) error {
	var notifications []models.Notification
	if err := c.DB.Where("user_id = ?", actor(ctx).ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": notifications})
}

func (c *NotificationController) GetUnreadCount(ctx *fiber.Ctx) error {
	var count int64
	if err := c.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", actor(ctx).ID, false).
		Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"count": count}})
}

func (c *NotificationController) MarkAsRead(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	result := c.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, actor(ctx).ID).
		Update("is_read", true)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Notification not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Notification marked as read"})
}

func (c *NotificationController) MarkAllAsRead(ctx *fiber.Ctx) error {
	if err := c.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", actor(ctx).ID, false).
		Update("is_read", true).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "All notifications marked as read"})
}

func (c *NotificationController) DeleteNotification(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	result := c.DB.Where("id = ? AND user_id = ?", id, actor(ctx).ID).Delete(&models.Notification{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Notification not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Notification deleted"})
}

func (c *NotificationController) ClearNotifications(ctx *fiber.Ctx) error {
	if err := c.DB.Where("user_id = ?", actor(ctx).ID).Delete(&models.Notification{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Notifications cleared"})
}
