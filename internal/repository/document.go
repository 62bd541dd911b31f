package repository

import (
	"context"

	"docshare/internal/model"
)

// DocumentRepository defines data access for document metadata using SQL
// queries only. No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByOwner returns a paginated list of a user's own documents,
	// newest first, with the total row count.
	ListByOwner(ctx context.Context, ownerID string, pq PageQuery) (*PageResult[model.Document], error)

	// Update persists the mutable fields (title, description, is_public,
	// last_modified) of an existing document.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// DeleteWithGrants removes the document row and every collaboration
	// grant referencing it inside a single transaction, so no orphan
	// grant can survive the document.
	DeleteWithGrants(ctx context.Context, id string) error
}
