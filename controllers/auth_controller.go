package controllers

import (
	"time"

	"inventory-app/config"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}

	if input.Username == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Missing required fields"})
	}

	var user models.User
	if err := c.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid username or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid username or password"})
	}

	sessionID := uuid.New().String()
	now := time.Now()

	session := models.UserSession{
		UserID:         user.ID,
		SessionID:      sessionID,
		IPAddress:      ctx.IP(),
		UserAgent:      ctx.Get("User-Agent"),
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Duration(config.JWTExpiration) * time.Second),
	}
	if err := c.DB.Create(&session).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "An error occurred during login"})
	}

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"user_id":    user.ID,
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "An error occurred during login"})
	}

	ctx.Cookie(config.GetSessionCookie(tokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   tokenString,
		"user": fiber.Map{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

// Status reports whether the caller holds a live session.
func (c *AuthController) Status(ctx *fiber.Ctx) error {
	a, ok := middleware.GetActor(ctx)
	if !ok {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"authenticated": false, "user": nil})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"authenticated": true, "user": a})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "invalid session"})
	}

	var session models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).First(&session).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "invalid session"})
	}

	session.IsActive = false
	session.LastActivityAt = time.Now()
	c.DB.Save(&session)

	// Hapus token dari cookie
	ctx.Cookie(config.GetSessionCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Logout successful"})
}
