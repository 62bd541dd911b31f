package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docshare/internal/http/middleware"
	"docshare/internal/model"
	"docshare/internal/service"
)

type shareRequest struct {
	UserID     string           `json:"user_id"`
	Permission model.Permission `json:"permission"`
}

// ShareDocument grants or updates a collaborator's permission level.
// 201 on a new grant, 200 on a level change.
func ShareDocument(sharingSvc service.SharingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in shareRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if _, err := uuid.Parse(in.UserID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "invalid user id format")
		}

		grant, created, err := sharingSvc.Share(c.UserContext(), middleware.ActorID(c), id, in.UserID, in.Permission)
		if err != nil {
			return serviceError(c, err)
		}
		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(grant)
	}
}

// ListCollaborators returns the grants on a document. Owner only.
func ListCollaborators(sharingSvc service.SharingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		grants, err := sharingSvc.ListCollaborators(c.UserContext(), middleware.ActorID(c), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": grants})
	}
}

// UnshareDocument revokes a collaborator's grant.
func UnshareDocument(sharingSvc service.SharingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := documentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		granteeID := c.Params("userId")
		if _, err := uuid.Parse(granteeID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "invalid user id format")
		}
		if err := sharingSvc.Unshare(c.UserContext(), middleware.ActorID(c), id, granteeID); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
