// Package handlers contains the HTTP route handlers. Handlers are stateless
// translators: they shape requests into repository calls and let repository
// errors propagate to the app-level error boundary.
package handlers

import (
	"strconv"

	"murmur/models"

	"github.com/gofiber/fiber/v2"
)

// parseID rejects only syntactically invalid ids; a well-formed id that
// matches no row surfaces as not-found from the repository instead.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}
