package repository

import (
	"context"

	"docshare/internal/model"
)

// CollaborationRepository defines data access for permission grants.
// The (document_id, user_id) pair is unique at the database level; Upsert
// relies on that constraint so concurrent share calls for the same pair
// collapse into an update instead of surfacing a raw constraint error.
type CollaborationRepository interface {
	// Upsert inserts the grant or, when one already exists for the
	// (document, user) pair, updates its permission in place. The bool
	// result reports whether the row was newly created.
	Upsert(ctx context.Context, c *model.Collaboration) (*model.Collaboration, bool, error)

	// FindByDocumentAndUser returns the grant for the pair, or sql.ErrNoRows.
	FindByDocumentAndUser(ctx context.Context, documentID, userID string) (*model.Collaboration, error)

	// ListByDocument returns all grants on a document.
	ListByDocument(ctx context.Context, documentID string) ([]model.Collaboration, error)

	// ListByUser returns all grants held by a user.
	ListByUser(ctx context.Context, userID string) ([]model.Collaboration, error)

	// Delete removes the grant for the pair. Returns sql.ErrNoRows when
	// no grant exists.
	Delete(ctx context.Context, documentID, userID string) error
}
