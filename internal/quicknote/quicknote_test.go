package quicknote_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/logging"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/quicknote"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
)

func open(slot storage.Slot, at time.Time) *quicknote.Store {
	return quicknote.Open(context.Background(), slot, logging.Discard(), func() time.Time { return at })
}

func TestAddListDeleteAt(t *testing.T) {
	slot := storage.NewMemorySlot()
	ctx := context.Background()
	t0 := time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC)

	s := open(slot, t0)
	_, err := s.Add(ctx, "  first  ")
	require.NoError(t, err)
	_, err = s.Add(ctx, "second")
	require.NoError(t, err)

	notes := s.List()
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Text)
	assert.Equal(t, "first", notes[1].Text)
	assert.Equal(t, t0.UnixMilli(), notes[1].At)

	ok, err := s.DeleteAt(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded := open(slot, t0)
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "second", reloaded.List()[0].Text)
}

func TestAddRejectsEmpty(t *testing.T) {
	s := open(storage.NewMemorySlot(), time.Now())
	_, err := s.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, quicknote.ErrEmpty)
	assert.Empty(t, s.List())
}

func TestDeleteAtOutOfRangeIsNoOp(t *testing.T) {
	slot := storage.NewMemorySlot()
	s := open(slot, time.Now())
	_, _ = s.Add(context.Background(), "x")
	writes := slot.SetCount()

	for _, i := range []int{-1, 1, 99} {
		ok, err := s.DeleteAt(context.Background(), i)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Len(t, s.List(), 1)
	assert.Equal(t, writes, slot.SetCount())
}

func TestCorruptBlobStartsEmpty(t *testing.T) {
	slot := storage.NewMemorySlot()
	require.NoError(t, slot.Set(context.Background(), quicknote.DefaultKey, []byte("{nope")))
	assert.Empty(t, open(slot, time.Now()).List())
}

func TestDoesNotTouchEntrySchema(t *testing.T) {
	slot := storage.NewMemorySlot()
	ctx := context.Background()
	_, _ = open(slot, time.Now()).Add(ctx, "quick")

	entries := journal.Open(ctx, slot)
	assert.Equal(t, 0, entries.Len())

	data, err := slot.Get(ctx, journal.DefaultKey)
	require.NoError(t, err)
	assert.Nil(t, data)
}
