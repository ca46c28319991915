package services

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Error carries the HTTP status a failed operation maps to. Controllers
// translate it into the JSON envelope without inspecting message text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ErrValidation(format string, args ...interface{}) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func ErrNotFound(format string, args ...interface{}) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflicts surface as 400, the API has no dedicated conflict code.
func ErrConflict(format string, args ...interface{}) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func ErrForbidden(format string, args ...interface{}) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

func ErrStorage(err error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: "database error: " + err.Error()}
}

// wrapNotFound maps a record lookup failure to the taxonomy.
func wrapNotFound(err error, format string, args ...interface{}) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(format, args...)
	}
	return ErrStorage(err)
}

// StatusOf returns the HTTP status for any error coming out of a
// service call.
func StatusOf(err error) int {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Status
	}
	return fiber.StatusInternalServerError
}
