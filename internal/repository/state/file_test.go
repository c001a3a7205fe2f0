package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
)

// TestFileRepository_SaveAndLoad verifies the alarm set round-trips through
// the JSON file in insertion order.
func TestFileRepository_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "alarms.json")
	repo := NewFileRepository(path)

	alarms := []*domain.Alarm{
		{
			ID:        domain.NewID(),
			Hour:      7,
			Minute:    30,
			Label:     "Wake up",
			Enabled:   true,
			Kind:      domain.KindRecurring,
			CreatedAt: time.Unix(1700000000, 0).UTC(),
		},
		{
			ID:      domain.NewID(),
			Hour:    22,
			Minute:  0,
			Label:   "Reminder",
			Enabled: false,
			Kind:    domain.KindOneShot,
		},
	}

	require.NoError(t, repo.Save(context.Background(), alarms))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	require.Equal(t, alarms[0].ID, loaded[0].ID)
	require.Equal(t, 7, loaded[0].Hour)
	require.Equal(t, 30, loaded[0].Minute)
	require.Equal(t, "Wake up", loaded[0].Label)
	require.True(t, loaded[0].Enabled)
	require.Equal(t, domain.KindRecurring, loaded[0].Kind)
	require.Equal(t, alarms[0].CreatedAt, loaded[0].CreatedAt)

	require.Equal(t, alarms[1].ID, loaded[1].ID)
	require.False(t, loaded[1].Enabled)
	require.Equal(t, domain.KindOneShot, loaded[1].Kind)
	require.True(t, loaded[1].CreatedAt.IsZero())
}

// TestFileRepository_LoadMissing verifies a missing file maps to ErrNotFound.
func TestFileRepository_LoadMissing(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_SaveEmpty verifies an empty set round-trips to an empty slice.
func TestFileRepository_SaveEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "alarms.json")
	repo := NewFileRepository(path)

	require.NoError(t, repo.Save(context.Background(), nil))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, loaded)
}
