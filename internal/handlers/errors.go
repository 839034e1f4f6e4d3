package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"smartcv/analyzer/internal/models"
)

// respondPipelineError maps pipeline failures to a specific status and
// message so the caller always learns the offending condition.
func respondPipelineError(c *fiber.Ctx, err error) error {
	var extractionErr *models.ExtractionError
	var rejectedErr *models.ContentRejectedError
	var malformedErr *models.MalformedResponseError
	var schemaErr *models.SchemaViolationError

	switch {
	case errors.As(err, &rejectedErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  rejectedErr.Error(),
			"reason": rejectedErr.Reason,
		})
	case errors.As(err, &extractionErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": extractionErr.Error(),
		})
	case errors.Is(err, models.ErrServiceUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &malformedErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   malformedErr.Error(),
			"excerpt": malformedErr.Excerpt,
		})
	case errors.As(err, &schemaErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": schemaErr.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
