package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewFileStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()
	data := []byte("<notaryProviderContract/>")

	name, err := store.Store(ctx, "server-contract.xml", data)
	require.NoError(t, err)
	assert.Equal(t, "server-contract.xml", name)

	fetched, err := store.Fetch(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, data, fetched)
}

func TestFileStoreNestedNames(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	name, err := store.Store(ctx, "templates/assets/silver.xml", []byte("contract"))
	require.NoError(t, err)

	fetched, err := store.Fetch(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []byte("contract"), fetched)
}

func TestFileStoreFetchMissing(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.Fetch(context.Background(), "no-such-object")
	assert.ErrorIs(t, err, interfaces.ErrObjectNotFound)
}

func TestFileStoreRejectsEscapingNames(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	for _, name := range []string{"../outside", "../../etc/passwd", "/etc/passwd", "a/../../outside"} {
		_, err := store.Fetch(ctx, name)
		assert.Error(t, err, "fetch %q", name)

		_, err = store.Store(ctx, name, []byte("data"))
		assert.Error(t, err, "store %q", name)
	}
}

func TestFileStoreAvailable(t *testing.T) {
	store := newTestFileStore(t)
	assert.True(t, store.Available(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gone := &FileStore{
		baseDir: filepath.Join(t.TempDir(), "missing"),
		log:     logger,
	}
	assert.False(t, gone.Available(context.Background()))
}

func TestFileStoreLocationURI(t *testing.T) {
	store := newTestFileStore(t)
	assert.Equal(t, "file://"+store.baseDir, store.LocationURI())
}
