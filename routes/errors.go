package routes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tiktok-downloader-api/models"
)

// ErrorHandler catches everything that escaped the handlers, including
// panics surfaced by the recover middleware. The caller only ever sees a
// generic message; the full detail stays in the server log.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		log.Errorw("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)

		return c.Status(status).JSON(models.ErrorResponse{
			Error:   "server_error",
			Message: "An unexpected error occurred",
			Status:  status,
		})
	}
}
