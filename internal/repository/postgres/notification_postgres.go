package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// NotificationPostgres is a PostgreSQL implementation of repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

const notificationColumns = `id, user_id, content, is_read, created_at, related_document_id, related_user_id`

func scanNotification(row interface{ Scan(...any) error }) (*model.Notification, error) {
	var n model.Notification
	if err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Content,
		&n.IsRead,
		&n.CreatedAt,
		&n.RelatedDocumentID,
		&n.RelatedUserID,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create appends a new notification row and returns the stored record.
func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const q = `
		INSERT INTO notifications (id, user_id, content, is_read, created_at, related_document_id, related_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + notificationColumns
	row := r.db.QueryRowContext(ctx, q,
		n.ID,
		n.UserID,
		n.Content,
		n.IsRead,
		n.CreatedAt,
		n.RelatedDocumentID,
		n.RelatedUserID,
	)
	return scanNotification(row)
}

// FindByID fetches a single notification by its ID.
func (r *NotificationPostgres) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	const q = `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	return scanNotification(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns a user's notifications with the given read state,
// newest first.
func (r *NotificationPostgres) ListByUser(ctx context.Context, userID string, read bool) ([]model.Notification, error) {
	const q = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND is_read = $2
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, read)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead flags a single notification as read. Already-read rows are
// left untouched, so repeated calls are no-ops.
func (r *NotificationPostgres) MarkRead(ctx context.Context, id string) error {
	const q = `UPDATE notifications SET is_read = true WHERE id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// MarkAllRead flags every unread notification of a user as read in a
// single statement.
func (r *NotificationPostgres) MarkAllRead(ctx context.Context, userID string) error {
	const q = `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, q, userID)
	return err
}
