package serverutils

import (
	"errors"

	"ai-dialogue-be/pkg/knowledge"
	"ai-dialogue-be/pkg/semantics"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps error classes escaping the controllers to
// the response envelope. Parse contract violations are the client's
// fault, store failures are ours.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, semantics.ErrContract):
			status = fiber.StatusUnprocessableEntity
			message = err.Error()
		case errors.Is(err, knowledge.ErrStoreUnavailable):
			status = fiber.StatusServiceUnavailable
			message = "knowledge store unavailable"
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}
