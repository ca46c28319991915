package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	service *services.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:      db,
		service: services.NewUserService(repositories.NewUserRepository(db)),
	}
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := c.service.GetAllUsers()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": users})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	a := actor(ctx)
	if !a.IsPrivileged() && a.ID != uint(id) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	user, err := c.service.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": user})
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput struct {
		Username string `json:"username" validate:"required,min=3"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=admin manager regular"`
		Phone    string `json:"phone"`
		Email    string `json:"email" validate:"omitempty,email"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if _, err := c.service.GetUserByUsername(userInput.Username); err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Username already exists"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	user := models.User{
		Username: userInput.Username,
		Password: string(hashed),
		FullName: userInput.FullName,
		Role:     userInput.Role,
		Phone:    userInput.Phone,
		Email:    userInput.Email,
	}

	if err := c.service.CreateUser(&user); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    fiber.Map{"user_id": user.ID},
	})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var input struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		FullName *string `json:"full_name"`
		Role     *string `json:"role"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	target, err := c.service.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	a := actor(ctx)
	isSelfUpdate := a.ID == uint(id)
	targetPrivileged := target.IsPrivileged()

	if !a.IsPrivileged() && !isSelfUpdate {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "You can only update your own information"})
	}
	if a.IsPrivileged() && !a.IsAdmin() && targetPrivileged && !isSelfUpdate {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Managers cannot modify admins or other managers"})
	}
	if input.Role != nil && *input.Role == models.RoleAdmin && !a.IsAdmin() {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Only admins can assign admin role"})
	}
	if input.Role != nil && !a.IsPrivileged() && *input.Role != target.Role {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Regular users cannot change their role"})
	}

	if input.Username != nil && *input.Username != target.Username {
		if _, err := c.service.GetUserByUsername(*input.Username); err == nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Username already exists"})
		}
		target.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
		}
		target.Password = string(hashed)
	}
	if input.FullName != nil {
		target.FullName = *input.FullName
	}
	if input.Role != nil && a.IsPrivileged() {
		target.Role = *input.Role
	}
	if input.Phone != nil {
		target.Phone = *input.Phone
	}
	if input.Email != nil {
		target.Email = *input.Email
	}

	if err := c.service.UpdateUser(target); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User updated successfully"})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	a := actor(ctx)
	if a.ID == uint(id) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "You cannot delete your own account"})
	}

	if _, err := c.service.GetUserByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.service.DeleteUser(uint(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}
