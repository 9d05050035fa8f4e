package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves audit entries with optional filters.
// Zero-value filters are ignored, so a bare query returns the full trail.
type GetAuditTrailQuery struct {
	actor     access.Actor
	subjectID kernel.UUID
	actorID   kernel.UUID
	from      time.Time
	to        time.Time

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates an audit trail query.
// SubjectID and actorID filter when non-zero; from and to bound the
// time range when non-zero.
func NewGetAuditTrailQuery(
	actor access.Actor,
	subjectID, actorID kernel.UUID,
	from, to time.Time,
) (GetAuditTrailQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return GetAuditTrailQuery{
		actor:     actor,
		subjectID: subjectID,
		actorID:   actorID,
		from:      from,
		to:        to,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q GetAuditTrailQuery) Actor() access.Actor {
	return q.actor
}

// SubjectID returns the subject filter; zero means no filter.
func (q GetAuditTrailQuery) SubjectID() kernel.UUID {
	return q.subjectID
}

// ActorID returns the acting user filter; zero means no filter.
func (q GetAuditTrailQuery) ActorID() kernel.UUID {
	return q.actorID
}

// From returns the lower time bound; zero means unbounded.
func (q GetAuditTrailQuery) From() time.Time {
	return q.from
}

// To returns the upper time bound; zero means unbounded.
func (q GetAuditTrailQuery) To() time.Time {
	return q.to
}

// GetAuditTrailQueryResponse is a flat projection of one audit entry.
type GetAuditTrailQueryResponse struct {
	ID         kernel.UUID
	ActorID    kernel.UUID
	Action     string
	SubjectID  kernel.UUID
	Before     string
	After      string
	OccurredAt time.Time
}
