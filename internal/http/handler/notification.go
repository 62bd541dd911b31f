package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docshare/internal/http/middleware"
	"docshare/internal/service"
)

// ListNotifications returns the actor's notifications. The status query
// selects unread (default) or read.
func ListNotifications(notifSvc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := middleware.ActorID(c)
		status := c.Query("status", "unread")

		switch status {
		case "unread":
			items, err := notifSvc.ListUnread(c.UserContext(), actorID)
			if err != nil {
				return serviceError(c, err)
			}
			return c.JSON(fiber.Map{"data": items})
		case "read":
			items, err := notifSvc.ListRead(c.UserContext(), actorID)
			if err != nil {
				return serviceError(c, err)
			}
			return c.JSON(fiber.Map{"data": items})
		default:
			return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "status must be unread or read")
		}
	}
}

// MarkNotificationRead flags one of the actor's notifications as read.
func MarkNotificationRead(notifSvc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := notifSvc.MarkRead(c.UserContext(), middleware.ActorID(c), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MarkAllNotificationsRead flags every unread notification of the actor
// as read.
func MarkAllNotificationsRead(notifSvc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := notifSvc.MarkAllRead(c.UserContext(), middleware.ActorID(c)); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
