package serverutils

import (
	"errors"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/service"
	"swimtrack-be/pkg/selection"
	"swimtrack-be/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps domain errors to HTTP statuses.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	var validationErr *ValidationError

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, contract.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, selection.ErrUnknownKind):
		return fiber.StatusBadRequest
	case errors.Is(err, contract.ErrReferenceNotFound),
		errors.Is(err, utils.ErrInvalidTime),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrImmutableField):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware renders any error returned down the chain as an
// ErrorResponseBody. Internal errors are logged and masked.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := StatusFor(err)
		message := err.Error()
		if code == fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
			message = "Internal server error"
		}

		body := ErrorResponse(code, message)
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			body.Message = "Validation failed"
			body.Errors = validationErr.Fields
		}
		return ctx.Status(code).JSON(body)
	}
}
