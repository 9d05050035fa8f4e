package access

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies who is performing an operation. Authentication happens
// outside this core; callers resolve a session to an actor id and role and
// pass the Actor into every command explicitly. There is no ambient
// current-user state.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates an Actor with a validated identifier and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Can reports whether this actor holds the given capability.
func (a Actor) Can(capability Capability) bool {
	return Can(a.role, capability)
}
