package handler

import (
	"github.com/gofiber/fiber/v2"

	"docshare/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Register handles account creation for a specific role.
func Register(userSvc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		user, err := userSvc.Register(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// Login verifies credentials and returns the user with a bearer token.
func Login(userSvc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		user, token, err := userSvc.Authenticate(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(loginResponse{User: user, Token: token})
	}
}
