package audit

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry or RestoreEntry factory functions.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Action identifies the kind of state change an audit entry documents.
type Action string

const (
	ActionOrderCreate     Action = "order.create"
	ActionOrderTransition Action = "order.transition"
	ActionOrderItemAdd    Action = "order.item_add"
	ActionProductCreate   Action = "product.create"
	ActionProductRestock  Action = "product.restock"
)

// Entry is an immutable record of one state-changing action: who did what to
// which subject, when, and the before/after snapshots of the changed value.
// Entries have no mutating methods; once constructed they only travel to the
// store and back.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	action     Action
	subjectID  kernel.UUID
	before     string
	after      string
	occurredAt time.Time

	isConstructed bool
}

// NewEntry creates an audit entry stamped with the current time.
// before and after are snapshots of the changed value; before may be empty
// for creations.
func NewEntry(actorID kernel.UUID, action Action, subjectID kernel.UUID, before, after string) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), actorID, action, subjectID, before, after, time.Now().UTC())
}

// RestoreEntry reconstructs an audit entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	action Action,
	subjectID kernel.UUID,
	before, after string,
	occurredAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := actorID.Validate(); err != nil {
		return nil, err
	}
	if err := subjectID.Validate(); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}

	return &Entry{
		id:            id,
		actorID:       actorID,
		action:        action,
		subjectID:     subjectID,
		before:        before,
		after:         after,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ActorID returns who performed the action.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Action returns the action kind.
func (e *Entry) Action() Action {
	return e.action
}

// SubjectID returns the identifier of the changed object.
func (e *Entry) SubjectID() kernel.UUID {
	return e.subjectID
}

// Before returns the snapshot of the value before the change.
func (e *Entry) Before() string {
	return e.before
}

// After returns the snapshot of the value after the change.
func (e *Entry) After() string {
	return e.after
}

// OccurredAt returns when the action happened.
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}
