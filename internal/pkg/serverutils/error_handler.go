package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"exposurelog-be/internal/pkg/apperror"
	"exposurelog-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware maps app errors to HTTP statuses: bad-request 400,
// not-found 404, everything else (including storage failures) 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := statusForKind(appErr.Kind)
			if appErr.Kind == apperror.KindInternal {
				log.Error("http", "internal error", map[string]interface{}{
					"path":  ctx.Path(),
					"error": err.Error(),
				})
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindBadRequest:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
