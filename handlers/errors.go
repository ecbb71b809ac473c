package handlers

import (
	"errors"
	"log"

	"murmur/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-level error boundary. Application errors map to
// their status; anything else is logged and answered with a generic 500 so
// internal detail never reaches the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == "INTERNAL_ERROR" {
			log.Printf("Error: %v", appErr)
		}
		return models.RespondWithError(c, appErr.Status(), appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return models.RespondWithError(c, fiberErr.Code, fiberErr)
	}

	log.Printf("Error: %v", err)
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
