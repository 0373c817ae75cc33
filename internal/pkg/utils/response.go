package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/destination-service/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError переводит AppError в HTTP-ответ; неизвестные ошибки дают 500.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
