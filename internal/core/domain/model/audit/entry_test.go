package audit_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates_entry_with_timestamp", func(t *testing.T) {
		actorID := kernel.NewUUID()
		subjectID := kernel.NewUUID()

		entry, err := audit.NewEntry(actorID, audit.ActionOrderTransition, subjectID, "Pending", "Processing")

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.NoError(t, entry.ID().Validate())
		assert.True(t, entry.ActorID().IsEqual(actorID))
		assert.Equal(t, audit.ActionOrderTransition, entry.Action())
		assert.True(t, entry.SubjectID().IsEqual(subjectID))
		assert.Equal(t, "Pending", entry.Before())
		assert.Equal(t, "Processing", entry.After())
		assert.WithinDuration(t, time.Now().UTC(), entry.OccurredAt(), time.Minute)
	})

	t.Run("allows_empty_before_snapshot_for_creations", func(t *testing.T) {
		entry, err := audit.NewEntry(kernel.NewUUID(), audit.ActionOrderCreate, kernel.NewUUID(), "", "Draft")

		require.NoError(t, err)
		assert.Empty(t, entry.Before())
	})

	t.Run("rejects_invalid_arguments", func(t *testing.T) {
		actorID := kernel.NewUUID()
		subjectID := kernel.NewUUID()

		_, err := audit.NewEntry(kernel.UUID{}, audit.ActionOrderCreate, subjectID, "", "Draft")
		require.Error(t, err)

		_, err = audit.NewEntry(actorID, "", subjectID, "", "Draft")
		require.Error(t, err)

		_, err = audit.NewEntry(actorID, audit.ActionOrderCreate, kernel.UUID{}, "", "Draft")
		require.Error(t, err)
	})

	t.Run("zero_value_entry_fails_validation", func(t *testing.T) {
		var entry audit.Entry
		require.ErrorIs(t, entry.Validate(), audit.ErrEntryIsNotConstructed)
	})
}

func TestRestoreEntry(t *testing.T) {
	t.Run("restores_persisted_entry", func(t *testing.T) {
		id := kernel.NewUUID()
		occurredAt := time.Now().UTC().Add(-time.Hour)

		entry, err := audit.RestoreEntry(id, kernel.NewUUID(), audit.ActionProductRestock,
			kernel.NewUUID(), "3", "10", occurredAt)

		require.NoError(t, err)
		assert.True(t, entry.ID().IsEqual(id))
		assert.Equal(t, occurredAt, entry.OccurredAt())
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		_, err := audit.RestoreEntry(kernel.UUID{}, kernel.NewUUID(), audit.ActionProductRestock,
			kernel.NewUUID(), "3", "10", time.Now())

		require.Error(t, err)
	})
}
