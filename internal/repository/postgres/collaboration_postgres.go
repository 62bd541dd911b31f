package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// CollaborationPostgres is a PostgreSQL implementation of repository.CollaborationRepository.
type CollaborationPostgres struct {
	db *sql.DB
}

// NewCollaborationPostgres creates a new CollaborationPostgres repository.
func NewCollaborationPostgres(db *sql.DB) *CollaborationPostgres {
	return &CollaborationPostgres{db: db}
}

var _ repository.CollaborationRepository = (*CollaborationPostgres)(nil)

const collaborationColumns = `id, document_id, user_id, permission, created_at`

func scanCollaboration(row interface{ Scan(...any) error }, extra ...any) (*model.Collaboration, error) {
	var c model.Collaboration
	dest := []any{&c.ID, &c.DocumentID, &c.UserID, &c.Permission, &c.CreatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert inserts the grant or updates the permission of an existing grant
// for the same (document_id, user_id) pair. The UNIQUE constraint makes
// concurrent inserts for the same pair resolve into the update branch.
// xmax = 0 holds only for rows created by the current transaction, which
// is how the insert/update distinction is reported.
func (r *CollaborationPostgres) Upsert(ctx context.Context, c *model.Collaboration) (*model.Collaboration, bool, error) {
	const q = `
		INSERT INTO collaborations (id, document_id, user_id, permission, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (document_id, user_id)
		DO UPDATE SET permission = EXCLUDED.permission
		RETURNING ` + collaborationColumns + `, (xmax = 0) AS inserted`
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.DocumentID,
		c.UserID,
		c.Permission,
		c.CreatedAt,
	)
	var inserted bool
	out, err := scanCollaboration(row, &inserted)
	if err != nil {
		return nil, false, err
	}
	return out, inserted, nil
}

// FindByDocumentAndUser fetches the grant for a (document, user) pair.
func (r *CollaborationPostgres) FindByDocumentAndUser(ctx context.Context, documentID, userID string) (*model.Collaboration, error) {
	const q = `SELECT ` + collaborationColumns + ` FROM collaborations WHERE document_id = $1 AND user_id = $2`
	return scanCollaboration(r.db.QueryRowContext(ctx, q, documentID, userID))
}

// ListByDocument returns all grants on a document, oldest first.
func (r *CollaborationPostgres) ListByDocument(ctx context.Context, documentID string) ([]model.Collaboration, error) {
	const q = `SELECT ` + collaborationColumns + ` FROM collaborations WHERE document_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, q, documentID)
}

// ListByUser returns all grants held by a user, newest first.
func (r *CollaborationPostgres) ListByUser(ctx context.Context, userID string) ([]model.Collaboration, error) {
	const q = `SELECT ` + collaborationColumns + ` FROM collaborations WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

func (r *CollaborationPostgres) list(ctx context.Context, q string, arg any) ([]model.Collaboration, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Collaboration, 0)
	for rows.Next() {
		c, err := scanCollaboration(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the grant for a (document, user) pair. Returns
// sql.ErrNoRows when no grant exists.
func (r *CollaborationPostgres) Delete(ctx context.Context, documentID, userID string) error {
	const q = `DELETE FROM collaborations WHERE document_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, documentID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
