package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/auth"
)

// ActorIDLocalKey is the key under which the authenticated user's ID is
// stored in Fiber's context locals.
const ActorIDLocalKey = "actor_id"

// Auth validates the Bearer token on the request and stores the subject
// user ID in context locals. Handlers read the actor from there and pass
// it explicitly into the services; nothing below the HTTP layer touches
// ambient session state.
func Auth(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		userID, err := tokens.Parse(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
		}
		c.Locals(ActorIDLocalKey, userID)
		return c.Next()
	}
}

// ActorID extracts the authenticated user ID stored by Auth. Empty when
// the request did not pass through the middleware.
func ActorID(c *fiber.Ctx) string {
	if v, ok := c.Locals(ActorIDLocalKey).(string); ok {
		return v
	}
	return ""
}
