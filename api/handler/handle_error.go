package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/igniteworks/cert-ignite-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	// Anything a handler did not map itself surfaces as an internal error.
	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
