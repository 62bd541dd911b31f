package model

import (
	"errors"
	"fmt"
	"time"
)

// Role classifies an account. The set is closed; registration rejects
// anything outside it.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleCompany   Role = "company"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleCompany:
		return true
	}
	return false
}

// ProfileField names a role-specific profile attribute.
type ProfileField string

const (
	FieldCollege     ProfileField = "college"
	FieldDateOfBirth ProfileField = "date_of_birth"
	FieldExpertise   ProfileField = "field"
	FieldCompanyName ProfileField = "company_name"
)

// roleSchema maps each role to the set of profile attributes that apply
// to it. Profiles are validated against this schema at construction and
// on update; there is no dynamic field stripping anywhere else.
var roleSchema = map[Role]map[ProfileField]bool{
	RoleStudent: {
		FieldCollege:     true,
		FieldDateOfBirth: true,
	},
	RoleProfessor: {
		FieldCollege:     true,
		FieldDateOfBirth: true,
		FieldExpertise:   true,
	},
	RoleCompany: {
		FieldCompanyName: true,
	},
}

// Profile holds the role-specific attributes of a user. Which fields may
// be set depends on the user's role; see ValidateProfile.
type Profile struct {
	College     string     `json:"college,omitempty"`
	Field       string     `json:"field,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

var ErrInvalidRole = errors.New("invalid role")

// ValidateProfile checks p against the schema for role. A populated field
// outside the role's schema is an error, as is a date of birth in the
// future.
func ValidateProfile(role Role, p Profile) error {
	allowed, ok := roleSchema[role]
	if !ok {
		return ErrInvalidRole
	}
	set := map[ProfileField]bool{
		FieldCollege:     p.College != "",
		FieldDateOfBirth: p.DateOfBirth != nil,
		FieldExpertise:   p.Field != "",
		FieldCompanyName: p.CompanyName != "",
	}
	for field, populated := range set {
		if populated && !allowed[field] {
			return fmt.Errorf("profile field %q does not apply to role %q", field, role)
		}
	}
	if p.DateOfBirth != nil && p.DateOfBirth.After(time.Now()) {
		return errors.New("date of birth cannot be in the future")
	}
	return nil
}

// User is an account on the platform. The ID is immutable after
// registration; profile fields are mutable within the role's schema.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ProfileImage string    `json:"profile_image"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}
