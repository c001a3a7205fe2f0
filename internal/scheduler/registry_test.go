package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
)

// TestRegistry_Create checks validation, defaults and id assignment.
func TestRegistry_Create(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := time.Date(2026, 8, 29, 6, 0, 0, 0, time.Local)

	a, err := r.Create(7, 30, "Wake up", domain.KindRecurring, now)
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.True(t, a.Enabled)
	require.Equal(t, "07:30", a.TimeOfDay())
	require.Equal(t, now, a.CreatedAt)

	// Out-of-range times are rejected without storing anything.
	_, err = r.Create(24, 0, "", domain.KindRecurring, now)
	require.ErrorIs(t, err, domain.ErrInvalidTime)

	_, err = r.Create(12, 60, "", domain.KindRecurring, now)
	require.ErrorIs(t, err, domain.ErrInvalidTime)

	_, err = r.Create(-1, 0, "", domain.KindRecurring, now)
	require.ErrorIs(t, err, domain.ErrInvalidTime)

	// Unknown kinds are rejected too.
	_, err = r.Create(12, 0, "", domain.Kind("weekly"), now)
	require.ErrorIs(t, err, domain.ErrInvalidKind)

	require.Equal(t, 1, r.Len())
}

// TestRegistry_SnapshotOrder verifies insertion order is preserved and
// that snapshots are copies, not aliases of internal state.
func TestRegistry_SnapshotOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := time.Now()

	first, err := r.Create(6, 0, "First", domain.KindRecurring, now)
	require.NoError(t, err)

	second, err := r.Create(6, 0, "Second", domain.KindRecurring, now)
	require.NoError(t, err)

	third, err := r.Create(23, 59, "Third", domain.KindOneShot, now)
	require.NoError(t, err)

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 3)
	require.Equal(t, first.ID, snapshot[0].ID)
	require.Equal(t, second.ID, snapshot[1].ID)
	require.Equal(t, third.ID, snapshot[2].ID)

	// Mutating the snapshot must not leak into the registry.
	snapshot[0].Enabled = false
	require.True(t, r.Get(first.ID).Enabled)
}

// TestRegistry_DeleteIdempotent verifies deletion of unknown ids is a no-op
// and repeated deletes stay safe.
func TestRegistry_DeleteIdempotent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	a, err := r.Create(8, 0, "", domain.KindRecurring, time.Now())
	require.NoError(t, err)

	require.False(t, r.Delete("no-such-id"))
	require.Equal(t, 1, r.Len())

	require.True(t, r.Delete(a.ID))
	require.Equal(t, 0, r.Len())
	require.Nil(t, r.Get(a.ID))

	require.False(t, r.Delete(a.ID))
}

// TestRegistry_SetEnabled checks toggling and the unknown-id error.
func TestRegistry_SetEnabled(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	a, err := r.Create(8, 0, "", domain.KindRecurring, time.Now())
	require.NoError(t, err)

	require.NoError(t, r.SetEnabled(a.ID, false))
	require.False(t, r.Get(a.ID).Enabled)

	require.NoError(t, r.SetEnabled(a.ID, true))
	require.True(t, r.Get(a.ID).Enabled)

	err = r.SetEnabled("no-such-id", true)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRegistry_Restore verifies rehydration keeps ids and order and skips
// duplicates and invalid times.
func TestRegistry_Restore(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	persisted := &domain.Alarm{
		ID:      "01J0000000000000000000AAAA",
		Hour:    7,
		Minute:  15,
		Label:   "Restored",
		Enabled: true,
		Kind:    domain.KindRecurring,
	}

	require.NoError(t, r.Restore(persisted))
	require.Equal(t, 1, r.Len())
	require.Equal(t, persisted.ID, r.Snapshot()[0].ID)

	// Restoring the same id again is a no-op.
	require.NoError(t, r.Restore(persisted))
	require.Equal(t, 1, r.Len())

	// Corrupt entries are rejected.
	err := r.Restore(&domain.Alarm{ID: "bad", Hour: 99, Minute: 0})
	require.ErrorIs(t, err, domain.ErrInvalidTime)
	require.Equal(t, 1, r.Len())
}

// TestRegistry_MarkFired verifies one-shot alarms self-disable after firing
// while recurring ones stay armed.
func TestRegistry_MarkFired(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	now := time.Now()

	oneShot, err := r.Create(9, 0, "", domain.KindOneShot, now)
	require.NoError(t, err)

	recurring, err := r.Create(9, 0, "", domain.KindRecurring, now)
	require.NoError(t, err)

	r.markFired(oneShot.ID)
	r.markFired(recurring.ID)
	r.markFired("no-such-id")

	require.False(t, r.Get(oneShot.ID).Enabled)
	require.True(t, r.Get(recurring.ID).Enabled)
}
