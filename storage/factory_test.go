package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

func newTestFactory() *Factory {
	return NewFactory(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFactoryCreatesFileStore(t *testing.T) {
	baseDir := t.TempDir()
	location, err := interfaces.NewStoreLocation("file://" + baseDir)
	require.NoError(t, err)

	store, err := newTestFactory().StoreFor(location)
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, store)
	assert.True(t, store.Available(context.Background()))
}

func TestFactoryRejectsEmptyFilePath(t *testing.T) {
	location, err := interfaces.NewStoreLocation("file://")
	require.NoError(t, err)

	_, err = newTestFactory().StoreFor(location)
	assert.ErrorIs(t, err, interfaces.ErrInvalidStoreURI)
}

func TestFactoryRejectsMalformedLocations(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "s3 without bucket", uri: "s3://"},
		{name: "ipfs without host", uri: "ipfs://:5001"},
		{name: "vault without host", uri: "vault:///secret/contracts"},
		{name: "vault without mount", uri: "vault://vault.example.com:8200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := interfaces.NewStoreLocation(tt.uri)
			require.NoError(t, err)

			_, err = newTestFactory().StoreFor(location)
			assert.ErrorIs(t, err, interfaces.ErrInvalidStoreURI)
		})
	}
}

func TestFactoryMultiStoreFor(t *testing.T) {
	fileLocation, err := interfaces.NewStoreLocation("file://" + t.TempDir())
	require.NoError(t, err)
	badLocation, err := interfaces.NewStoreLocation("s3://")
	require.NoError(t, err)

	// Invalid locations are skipped, not fatal.
	store, err := newTestFactory().MultiStoreFor([]interfaces.StoreLocation{fileLocation, badLocation})
	require.NoError(t, err)
	assert.True(t, store.Available(context.Background()))

	// No usable location at all is an error.
	_, err = newTestFactory().MultiStoreFor([]interfaces.StoreLocation{badLocation})
	assert.Error(t, err)
}
