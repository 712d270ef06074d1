package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/gridmenu/internal/orders"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeedAndList(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	seeded, err := s.SeedIfEmpty(ctx, orders.Seed())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = s.SeedIfEmpty(ctx, orders.Seed())
	require.NoError(t, err)
	assert.False(t, seeded)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders.Seed(), got)
}

func TestSaveUpdatesInPlaceAndAppendsNew(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	_, err := s.SeedIfEmpty(ctx, orders.Seed())
	require.NoError(t, err)

	first := orders.Seed()[0]
	first.Status = orders.StatusCompleted
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, first.Copy("PO-2024-001-copy")))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, orders.StatusCompleted, got[0].Status)
	assert.Equal(t, "PO-2024-001-copy", got[5].ID)
}

func TestDeleteCascadesNotes(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	_, err := s.SeedIfEmpty(ctx, orders.Seed())
	require.NoError(t, err)

	note, err := s.AddNote(ctx, "QC-2024-002", "  passed inspection ")
	require.NoError(t, err)
	assert.Equal(t, "passed inspection", note.Text)

	notes, err := s.Notes(ctx, "QC-2024-002")
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, s.Delete(ctx, "QC-2024-002"))
	notes, err = s.Notes(ctx, "QC-2024-002")
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.ErrorIs(t, s.Delete(ctx, "QC-2024-002"), ErrNotFound)
	_, err = s.Get(ctx, "QC-2024-002")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddNoteRejectsEmptyText(t *testing.T) {
	s := openTemp(t)
	_, err := s.AddNote(context.Background(), "PO-2024-001", "   ")
	assert.Error(t, err)
}

func TestOpenInMemory(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
