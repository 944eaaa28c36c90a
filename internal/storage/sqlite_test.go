package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
)

func openSQLite(t *testing.T) (*storage.SQLiteSlot, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "journal.db")
	slot, err := storage.OpenSQLiteSlot(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = slot.Close() })
	return slot, path
}

func TestSQLiteSlot_GetAbsentReturnsNilNil(t *testing.T) {
	slot, _ := openSQLite(t)

	v, err := slot.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteSlot_SetUpserts(t *testing.T) {
	slot, _ := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, slot.Set(ctx, "k", []byte("old")))
	require.NoError(t, slot.Set(ctx, "k", []byte("new")))

	v, err := slot.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLiteSlot_ReopenKeepsDataAndMigrationsAreIdempotent(t *testing.T) {
	slot, path := openSQLite(t)
	ctx := context.Background()
	require.NoError(t, slot.Set(ctx, "k", []byte("persisted")))
	require.NoError(t, slot.Close())

	reopened, err := storage.OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), v)
}

func TestSQLiteSlot_Backup(t *testing.T) {
	slot, _ := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, slot.Set(ctx, "k", []byte("{bad")))
	require.NoError(t, slot.Backup(ctx, "k"))
	require.NoError(t, slot.Backup(ctx, "k"))

	v, err := slot.Get(ctx, "k.corrupt")
	require.NoError(t, err)
	require.Equal(t, []byte("{bad"), v)
}

func TestOpenSQLiteSlot_EmptyPath(t *testing.T) {
	_, err := storage.OpenSQLiteSlot(context.Background(), "")
	require.Error(t, err)
}
