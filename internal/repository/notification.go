package repository

import (
	"context"

	"docshare/internal/model"
)

// NotificationRepository defines data access for notifications. Rows are
// append-only except for the is_read flag.
type NotificationRepository interface {
	// Create appends a new notification row and returns the stored row.
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)

	// FindByID returns a notification by ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Notification, error)

	// ListByUser returns a user's notifications filtered by read state,
	// ordered by creation time descending.
	ListByUser(ctx context.Context, userID string, read bool) ([]model.Notification, error)

	// MarkRead sets is_read on a single notification. Marking an
	// already-read row again is a no-op.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead sets is_read on every unread notification of a user in
	// one statement.
	MarkAllRead(ctx context.Context, userID string) error
}
