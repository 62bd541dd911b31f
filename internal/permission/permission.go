// Package permission computes effective access on documents. Functions
// here are pure: they take the current ownership and grant state as
// arguments and have no side effects, so every access-control check in
// the request layer (view, edit, download, delete, share) resolves
// through the same logic.
package permission

import "docshare/internal/model"

// Effective returns the permission userID actually has on doc, given the
// grant stored for (doc, userID), or nil if none exists.
//
// The owner always has edit access, regardless of any stored grant; an
// owner-referencing grant must never exist, and if one did it would be
// ignored here. Without a grant, public documents are viewable by
// everyone and private documents grant nothing.
func Effective(userID string, doc *model.Document, grant *model.Collaboration) model.Permission {
	if doc.IsOwnedBy(userID) {
		return model.PermissionEdit
	}
	if grant != nil {
		return grant.Permission
	}
	if doc.IsPublic {
		return model.PermissionView
	}
	return model.PermissionNone
}

// Has reports whether userID's effective permission on doc is at least
// required in the edit > comment > view > none hierarchy.
func Has(userID string, doc *model.Document, grant *model.Collaboration, required model.Permission) bool {
	return Effective(userID, doc, grant).Satisfies(required)
}
