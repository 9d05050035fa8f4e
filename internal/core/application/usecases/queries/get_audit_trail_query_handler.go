package queries

import (
	"context"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler reads the audit trail from the database.
// The trail is append-only and this reader never joins back to the
// aggregates it describes; deleted subjects keep their history.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the query. Requires the view orders capability, the
// baseline read permission every back office role holds.
// Entries come back newest first.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := access.Require(query.Actor().Role(), access.ViewOrders); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, actor_id, action, subject_id, before_state, after_state, occurred_at
		FROM audit_entries
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.SubjectID().Validate() == nil {
		sql += " AND subject_id = ?"
		args = append(args, query.SubjectID().Bytes())
	}
	if query.ActorID().Validate() == nil {
		sql += " AND actor_id = ?"
		args = append(args, query.ActorID().Bytes())
	}
	if !query.From().IsZero() {
		sql += " AND occurred_at >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += " AND occurred_at <= ?"
		args = append(args, query.To())
	}

	sql += " ORDER BY occurred_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAuditTrailQueryResponse, 0)
	for rows.Next() {
		var resp GetAuditTrailQueryResponse
		var id, actorID, subjectID uuid.UUID

		err = rows.Scan(
			&id,
			&actorID,
			&resp.Action,
			&subjectID,
			&resp.Before,
			&resp.After,
			&resp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		if resp.SubjectID, err = kernel.UUIDFromBytes(subjectID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
