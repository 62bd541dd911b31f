package model

import "time"

// Permission is an access level on a document. Levels form a strict
// hierarchy: edit implies comment, comment implies view, view implies
// nothing further. PermissionNone is the evaluator's "no access" result
// and is never stored in a grant.
type Permission string

const (
	PermissionNone    Permission = "none"
	PermissionView    Permission = "view"
	PermissionComment Permission = "comment"
	PermissionEdit    Permission = "edit"
)

var permissionRank = map[Permission]int{
	PermissionNone:    0,
	PermissionView:    1,
	PermissionComment: 2,
	PermissionEdit:    3,
}

// Valid reports whether p is a level that can be stored in a grant.
func (p Permission) Valid() bool {
	switch p {
	case PermissionView, PermissionComment, PermissionEdit:
		return true
	}
	return false
}

// Satisfies reports whether p is at least required in the hierarchy.
func (p Permission) Satisfies(required Permission) bool {
	return permissionRank[p] >= permissionRank[required]
}

// Collaboration is a grant of Permission to a non-owner user on a
// document. The (DocumentID, UserID) pair is unique; a grant never
// references the document's own owner, whose access is implicit.
type Collaboration struct {
	ID         string     `json:"id"`
	DocumentID string     `json:"document_id"`
	UserID     string     `json:"user_id"`
	Permission Permission `json:"permission"`
	CreatedAt  time.Time  `json:"created_at"`
}
