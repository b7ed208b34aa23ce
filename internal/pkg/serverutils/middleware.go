package serverutils

import (
	"errors"
	"time"

	"stembills-dashboard/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON error envelope.
// Controllers that want a specific status set it themselves; anything else lands here.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		var ve *ValidationError
		switch {
		case errors.As(err, &fe):
			code = fe.Code
		case errors.As(err, &ve):
			code = fiber.StatusBadRequest
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled request error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err,
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}

// RequestLogger logs one line per request at Debug level.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Debug("HTTP", "Request served", map[string]interface{}{
			"method":   ctx.Method(),
			"path":     ctx.Path(),
			"status":   ctx.Response().StatusCode(),
			"duration": time.Since(start).String(),
		})
		return err
	}
}
