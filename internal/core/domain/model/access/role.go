package access

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Role represents the permission tier attached to a user account.
// It determines the capability set available to an actor through the static
// policy table; see Can.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Viewer is a read-only role. Viewers can look at products and orders
	// but cannot change anything.
	Viewer

	// Staff can do everything a Viewer can, plus manage products and orders.
	Staff

	// Admin can do everything Staff can, plus manage users and settings.
	Admin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Viewer:      "Viewer",
		Staff:       "Staff",
		Admin:       "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Viewer: "Viewer",
		Staff:  "Staff",
		Admin:  "Admin",
	}
}

// RoleFromString parses the string representation of a role.
// Parsing is used at the transport boundary where the caller supplies the
// actor's role as text.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Viewer, Staff, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
