package middleware

import (
	"strings"
	"time"

	"inventory-app/config"
	"inventory-app/models"
	"inventory-app/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthMiddlewareStruct struct {
	DB *gorm.DB
}

func NewAuthMiddleware(db *gorm.DB) *AuthMiddlewareStruct {
	return &AuthMiddlewareStruct{DB: db}
}

// sessionToken membaca token dari cookie atau header Authorization
func sessionToken(ctx *fiber.Ctx) string {
	if cookie := ctx.Cookies("session_token"); cookie != "" {
		return cookie
	}

	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ""
	}
	return tokenParts[1]
}

// RequireAuth resolves the session cookie into a request-scoped actor
// stored in ctx.Locals. Every protected route runs through here.
func (a *AuthMiddlewareStruct) RequireAuth(ctx *fiber.Ctx) error {
	tokenString := sessionToken(ctx)
	if tokenString == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	var session models.UserSession
	if err := a.DB.Where("session_id = ? AND is_active = ? AND expires_at > ?",
		sessionID, true, time.Now()).First(&session).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	var user models.User
	if err := a.DB.First(&user, session.UserID).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Not authenticated",
		})
	}

	session.LastActivityAt = time.Now()
	a.DB.Save(&session)

	ctx.Locals("actor", types.Actor{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	})
	ctx.Locals("sessionID", sessionID)

	return ctx.Next()
}

// OptionalAuth attaches the actor when a live session exists but lets
// the request through either way. Used by the auth status endpoint.
func (a *AuthMiddlewareStruct) OptionalAuth(ctx *fiber.Ctx) error {
	tokenString := sessionToken(ctx)
	if tokenString == "" {
		return ctx.Next()
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Next()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Next()
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return ctx.Next()
	}

	var session models.UserSession
	if err := a.DB.Where("session_id = ? AND is_active = ? AND expires_at > ?",
		sessionID, true, time.Now()).First(&session).Error; err != nil {
		return ctx.Next()
	}

	var user models.User
	if err := a.DB.First(&user, session.UserID).Error; err != nil {
		return ctx.Next()
	}

	ctx.Locals("actor", types.Actor{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	})
	ctx.Locals("sessionID", sessionID)

	return ctx.Next()
}

// GetActor returns the authenticated actor attached by RequireAuth.
func GetActor(ctx *fiber.Ctx) (types.Actor, bool) {
	actor, ok := ctx.Locals("actor").(types.Actor)
	return actor, ok
}

// RequireManager allows admins and managers.
func RequireManager(ctx *fiber.Ctx) error {
	actor, ok := GetActor(ctx)
	if !ok || !actor.IsPrivileged() {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Insufficient permissions",
		})
	}
	return ctx.Next()
}

// RequireAdmin allows admins only.
func RequireAdmin(ctx *fiber.Ctx) error {
	actor, ok := GetActor(ctx)
	if !ok || !actor.IsAdmin() {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Insufficient permissions",
		})
	}
	return ctx.Next()
}
