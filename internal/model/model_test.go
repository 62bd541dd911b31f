package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleProfessor.Valid())
	assert.True(t, RoleCompany.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestPermissionValid(t *testing.T) {
	assert.True(t, PermissionView.Valid())
	assert.True(t, PermissionComment.Valid())
	assert.True(t, PermissionEdit.Valid())

	// none is an evaluator result, never a storable grant level
	assert.False(t, PermissionNone.Valid())
	assert.False(t, Permission("owner").Valid())
}

func TestPermissionSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		held     Permission
		required Permission
		want     bool
	}{
		{"edit satisfies edit", PermissionEdit, PermissionEdit, true},
		{"edit satisfies comment", PermissionEdit, PermissionComment, true},
		{"edit satisfies view", PermissionEdit, PermissionView, true},
		{"comment satisfies view", PermissionComment, PermissionView, true},
		{"comment does not satisfy edit", PermissionComment, PermissionEdit, false},
		{"view does not satisfy comment", PermissionView, PermissionComment, false},
		{"view does not satisfy edit", PermissionView, PermissionEdit, false},
		{"none satisfies nothing but none", PermissionNone, PermissionView, false},
		{"everything satisfies none", PermissionView, PermissionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.held.Satisfies(tt.required))
		})
	}
}

func TestValidateProfile(t *testing.T) {
	past := time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		role    Role
		profile Profile
		wantErr bool
	}{
		{"student with college and dob", RoleStudent, Profile{College: "MIT", DateOfBirth: &past}, false},
		{"student with expertise field", RoleStudent, Profile{Field: "databases"}, true},
		{"student with company name", RoleStudent, Profile{CompanyName: "Acme"}, true},
		{"professor with expertise", RoleProfessor, Profile{College: "ETH", Field: "compilers"}, false},
		{"professor with company name", RoleProfessor, Profile{CompanyName: "Acme"}, true},
		{"company with company name", RoleCompany, Profile{CompanyName: "Acme"}, false},
		{"company with college", RoleCompany, Profile{College: "MIT"}, true},
		{"empty profile always valid", RoleCompany, Profile{}, false},
		{"future date of birth", RoleStudent, Profile{DateOfBirth: &future}, true},
		{"unknown role", Role("admin"), Profile{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.role, tt.profile)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentIsOwnedBy(t *testing.T) {
	doc := Document{ID: "doc-1", OwnerID: "user-1"}

	assert.True(t, doc.IsOwnedBy("user-1"))
	assert.False(t, doc.IsOwnedBy("user-2"))
	assert.False(t, doc.IsOwnedBy(""))
}
