package handler

import (
	"github.com/gofiber/fiber/v2"

	"docshare/internal/http/middleware"
	"docshare/internal/service"
)

// GetProfile returns the authenticated user's own account.
func GetProfile(userSvc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userSvc.Get(c.UserContext(), middleware.ActorID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(user)
	}
}

// UpdateProfile updates the authenticated user's own account fields,
// validated against the per-role profile schema.
func UpdateProfile(userSvc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		user, err := userSvc.UpdateProfile(c.UserContext(), middleware.ActorID(c), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(user)
	}
}
