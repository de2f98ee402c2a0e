package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	layout := NewLayout("/home/user/.ot")

	assert.Equal(t, "/home/user/.ot/client_data", layout.ClientDataDir())
	assert.Equal(t, "/home/user/.ot/server_data", layout.ServerDataDir())
	assert.Equal(t, "/home/user/.ot/client_data/wallet.xml", layout.WalletFile())
	assert.Equal(t, "/home/user/.ot/client_data/contracts", layout.ContractsDir())
	assert.Equal(t, "/home/user/.ot/client_data/contracts/contract-A", layout.ContractFile("contract-A"))
	assert.Equal(t, "/home/user/.ot/client_data/credentials", layout.ClientCredentialsDir())
	assert.Equal(t, "/home/user/.ot/server_data/credentials", layout.ServerCredentialsDir())
	assert.Equal(t, "/home/user/.ot/client_data/ot.pid", layout.PIDFile())
}

func TestDefaultHome(t *testing.T) {
	home, err := DefaultHome()
	require.NoError(t, err)
	assert.Equal(t, ".ot", filepath.Base(home))
}

func TestRemoveStalePID(t *testing.T) {
	layout := NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(layout.ClientDataDir(), 0700))

	// No lock file: nothing to do.
	require.NoError(t, layout.RemoveStalePID(testLogger()))

	// Stale lock file gets removed.
	require.NoError(t, os.WriteFile(layout.PIDFile(), []byte("12345"), 0600))
	require.NoError(t, layout.RemoveStalePID(testLogger()))

	_, err := os.Stat(layout.PIDFile())
	assert.True(t, os.IsNotExist(err))
}
