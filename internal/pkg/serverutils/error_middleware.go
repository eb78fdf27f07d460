package serverutils

import (
	"errors"

	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string `json:"message"`
	ErrorId string `json:"error_id,omitempty"`
}

// ErrorHandlerMiddleware converts errors returned by controllers into JSON
// responses. Domain errors map to their status code; everything else becomes a
// generic 500 tagged with an error id for log correlation.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch apperror.KindOf(err) {
		case apperror.KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
		case apperror.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse{Message: err.Error()})
		case apperror.KindConflict:
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse{Message: err.Error()})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{Message: fiberErr.Message})
		}

		errorId := uuid.NewString()
		log.Error("http", "unhandled error", map[string]interface{}{
			"error_id": errorId,
			"path":     ctx.Path(),
			"method":   ctx.Method(),
			"error":    err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			ErrorId: errorId,
		})
	}
}
