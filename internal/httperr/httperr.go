package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a typed failure carrying the HTTP status it should be reported
// with. Services return these; the Fiber error handler translates them once
// at the boundary.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap attaches a cause that shows up in logs but not in the response body.
func Wrap(err error, status int, message string) *Error {
	return &Error{Status: status, Message: message, cause: err}
}

func Validation(message string) *Error {
	return New(fiber.StatusUnprocessableEntity, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusUnprocessableEntity, message)
}

func Upstream(err error, message string) *Error {
	return Wrap(err, fiber.StatusInternalServerError, message)
}

func UnsupportedMedia(message string) *Error {
	return New(fiber.StatusUnsupportedMediaType, message)
}

// StatusOf returns the HTTP status for any error, defaulting to 500.
func StatusOf(err error) int {
	var he *Error
	if errors.As(err, &he) {
		return he.Status
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// MessageOf returns the client-facing message for any error. Unclassified
// errors get a generic message so internals never leak into responses.
func MessageOf(err error) string {
	var he *Error
	if errors.As(err, &he) {
		return he.Message
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return "An unknown error occurred"
}

// Handler is the central fiber.Config.ErrorHandler.
func Handler(c *fiber.Ctx, err error) error {
	return c.Status(StatusOf(err)).JSON(fiber.Map{"message": MessageOf(err)})
}
