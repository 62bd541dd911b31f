package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docshare/internal/model"
)

func TestEffective(t *testing.T) {
	owner := "owner-1"
	stranger := "user-2"

	publicDoc := &model.Document{ID: "doc-1", OwnerID: owner, IsPublic: true}
	privateDoc := &model.Document{ID: "doc-2", OwnerID: owner, IsPublic: false}

	tests := []struct {
		name   string
		userID string
		doc    *model.Document
		grant  *model.Collaboration
		want   model.Permission
	}{
		{"owner always edits private", owner, privateDoc, nil, model.PermissionEdit},
		{"owner always edits public", owner, publicDoc, nil, model.PermissionEdit},
		{
			// a grant referencing the owner must never exist, and is ignored if it does
			"owner outranks a stray grant",
			owner, privateDoc,
			&model.Collaboration{DocumentID: "doc-2", UserID: owner, Permission: model.PermissionView},
			model.PermissionEdit,
		},
		{
			"grant level wins on private",
			stranger, privateDoc,
			&model.Collaboration{DocumentID: "doc-2", UserID: stranger, Permission: model.PermissionComment},
			model.PermissionComment,
		},
		{
			"grant level wins over public default",
			stranger, publicDoc,
			&model.Collaboration{DocumentID: "doc-1", UserID: stranger, Permission: model.PermissionEdit},
			model.PermissionEdit,
		},
		{"no grant on public falls back to view", stranger, publicDoc, nil, model.PermissionView},
		{"no grant on private gives nothing", stranger, privateDoc, nil, model.PermissionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Effective(tt.userID, tt.doc, tt.grant))
		})
	}
}

func TestHas(t *testing.T) {
	owner := "owner-1"
	viewer := "user-2"
	privateDoc := &model.Document{ID: "doc-1", OwnerID: owner, IsPublic: false}
	grant := &model.Collaboration{DocumentID: "doc-1", UserID: viewer, Permission: model.PermissionView}

	assert.True(t, Has(owner, privateDoc, nil, model.PermissionEdit))
	assert.True(t, Has(viewer, privateDoc, grant, model.PermissionView))
	assert.False(t, Has(viewer, privateDoc, grant, model.PermissionComment))
	assert.False(t, Has(viewer, privateDoc, nil, model.PermissionView))
}

// Monotonicity: raising a grant level never removes an ability the lower
// level had.
func TestEffectiveHierarchyMonotonic(t *testing.T) {
	doc := &model.Document{ID: "doc-1", OwnerID: "owner-1", IsPublic: false}
	levels := []model.Permission{model.PermissionView, model.PermissionComment, model.PermissionEdit}

	for i := 1; i < len(levels); i++ {
		lower := &model.Collaboration{DocumentID: doc.ID, UserID: "u", Permission: levels[i-1]}
		higher := &model.Collaboration{DocumentID: doc.ID, UserID: "u", Permission: levels[i]}
		for _, required := range levels {
			if Has("u", doc, lower, required) {
				assert.True(t, Has("u", doc, higher, required),
					"%s should keep every ability of %s", levels[i], levels[i-1])
			}
		}
	}
}
