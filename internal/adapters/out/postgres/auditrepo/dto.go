// Package auditrepo provides data transfer objects and mapping functions
// for the append-only audit trail.
package auditrepo

import (
	"time"

	"backoffice/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents one audit entry row. Rows are written once and
// never updated or deleted.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID     uuid.UUID `gorm:"type:uuid;index"`
	Action      string
	SubjectID   uuid.UUID `gorm:"type:uuid;index"`
	BeforeState string
	AfterState  string
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
// There is no inverse mapping here; reads go through the audit trail
// query handler.
func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:          entry.ID().Bytes(),
		ActorID:     entry.ActorID().Bytes(),
		Action:      string(entry.Action()),
		SubjectID:   entry.SubjectID().Bytes(),
		BeforeState: entry.Before(),
		AfterState:  entry.After(),
		OccurredAt:  entry.OccurredAt(),
	}
}
