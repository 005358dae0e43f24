package apperror

import "github.com/gofiber/fiber/v2"

// Error is a failure with a fixed HTTP status. Services and middleware raise
// these; only the router's error handler turns them into response bodies.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

func Unprocessable(message string) *Error {
	return New(fiber.StatusUnprocessableEntity, message)
}

func Internal(message string) *Error {
	return New(fiber.StatusInternalServerError, message)
}
