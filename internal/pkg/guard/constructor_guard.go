// Package guard implements a defensive construction pattern for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only objects created through their constructor carry a guard
// that passes validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, so structs embedding a guard cannot be
// used without going through their factory function.
//
// Example:
//
//	type RestockProductCommand struct {
//	    productID kernel.UUID
//	    delta     int
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewRestockProductCommand(...) (RestockProductCommand, error) {
//	    ...
//	    return RestockProductCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RestockProductCommand) Validate() error {
//	    return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
