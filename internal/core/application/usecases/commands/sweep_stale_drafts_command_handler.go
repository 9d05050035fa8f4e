package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// Audit entries for swept drafts are attributed to this fixed identity
// rather than a real user.
var systemActorID, _ = kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")

// SweepStaleDraftsCommandHandler cancels abandoned draft orders.
// Runs from the background sweeper job rather than a user request; the
// sweep acts as a system actor with the Admin role, so the same
// capability gate and transition edges apply as for user requests.
type SweepStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSweepStaleDraftsCommandHandler creates a handler for the draft sweep.
func NewSweepStaleDraftsCommandHandler(uowFactory OrderUoWFactory) SweepStaleDraftsCommandHandler {
	return SweepStaleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every draft older than the command's age and returns
// the number of drafts swept. Drafts hold no stock, so cancelling them
// never touches the inventory.
func (h SweepStaleDraftsCommandHandler) Handle(ctx context.Context, cmd SweepStaleDraftsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	system, err := access.NewActor(systemActorID, access.Admin)
	if err != nil {
		return 0, err
	}

	if err = access.Require(system.Role(), access.ManageOrders); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	drafts, err := uow.OrderRepository().GetStaleDrafts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, draft := range drafts {
		oldStatus := draft.Status()
		if err = draft.TransitionTo(order.Cancelled); err != nil {
			return 0, err
		}

		if err = uow.OrderRepository().Update(ctx, draft); err != nil {
			return 0, err
		}

		entry, entryErr := audit.NewEntry(
			system.ID(),
			audit.ActionOrderTransition,
			draft.ID(),
			oldStatus.String(),
			draft.Status().String(),
		)
		if entryErr != nil {
			return 0, entryErr
		}

		if err = uow.AuditRepository().Add(ctx, entry); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(drafts), nil
}
