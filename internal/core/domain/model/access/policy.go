package access

import (
	"errors"
	"fmt"
)

// Capability is a named permission granted to one or more roles.
type Capability string

const (
	ViewProducts   Capability = "view_products"
	ManageProducts Capability = "manage_products"
	ViewOrders     Capability = "view_orders"
	ManageOrders   Capability = "manage_orders"
	ManageUsers    Capability = "manage_users"
	ManageSettings Capability = "manage_settings"
)

// ErrPermissionDenied is the sentinel for capability check failures.
// Use errors.Is to detect it regardless of the concrete error value.
var ErrPermissionDenied = errors.New("permission denied")

// PermissionDeniedError reports that an actor's role lacks the capability
// required for an operation. It is surfaced to the caller and logged as a
// security-relevant event, but it never produces an audit entry because no
// state changed.
type PermissionDeniedError struct {
	Role       Role
	Capability Capability
}

// NewPermissionDeniedError creates a PermissionDeniedError for the given
// role and capability.
func NewPermissionDeniedError(role Role, capability Capability) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Capability: capability}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: role %s lacks capability %s", ErrPermissionDenied, e.Role, e.Capability)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// capabilities is the static role-to-capability table.
// Each tier is a strict superset of the one below it:
// Viewer ⊂ Staff ⊂ Admin.
func capabilities() map[Role][]Capability {
	viewer := []Capability{ViewProducts, ViewOrders}
	staff := append([]Capability{ManageProducts, ManageOrders}, viewer...)
	admin := append([]Capability{ManageUsers, ManageSettings}, staff...)

	return map[Role][]Capability{
		Viewer: viewer,
		Staff:  staff,
		Admin:  admin,
	}
}

// Can reports whether the given role is granted the given capability.
// The mapping is static; there are no dynamic or per-object overrides.
// Invalid roles hold no capabilities.
func Can(role Role, capability Capability) bool {
	for _, c := range capabilities()[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// Require returns nil when the role holds the capability, and a typed
// PermissionDeniedError otherwise. It is the guard called by every command
// handler before touching state.
func Require(role Role, capability Capability) error {
	if !Can(role, capability) {
		return NewPermissionDeniedError(role, capability)
	}
	return nil
}
