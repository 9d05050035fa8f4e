package ports

import (
	"context"

	"backoffice/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for audit entries.
// Entries are append-only; there is no update or delete.
type AuditRepository interface {
	// Add persists a new audit entry to storage.
	Add(ctx context.Context, entry *audit.Entry) error
}
