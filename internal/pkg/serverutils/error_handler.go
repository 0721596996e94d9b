package serverutils

import (
	"errors"
	"fmt"

	"ai-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns handler errors and panics into a JSON body.
// Feature handlers report their own outcomes with status 200; only routing
// and framework failures end up here.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("HTTP", "Handler panicked", map[string]interface{}{
					"path":  ctx.Path(),
					"error": fmt.Sprint(r),
				})
				err = ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal failure"))
			}
		}()

		err = ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "internal failure"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}
