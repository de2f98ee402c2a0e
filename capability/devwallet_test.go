package capability

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/provision"
)

func newTestWallet(t *testing.T) *DevWallet {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dev := NewDevWallet(t.TempDir(), logger)
	require.NoError(t, dev.Init())
	return dev
}

func TestDevWalletInit(t *testing.T) {
	dev := newTestWallet(t)
	layout := provision.NewLayout(dev.layout.Home)

	for _, dir := range []string{layout.ContractsDir(), layout.ClientCredentialsDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// The wallet metadata is armored and decodes to a document with a cached
	// key element.
	raw, err := os.ReadFile(layout.WalletFile())
	require.NoError(t, err)
	doc := dev.Decode(string(raw))
	assert.Contains(t, doc, "<cachedKey>")
	assert.NotEmpty(t, dev.cachedKey)
}

func TestDevWalletInit_PreservesCachedKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	home := t.TempDir()

	first := NewDevWallet(home, logger)
	require.NoError(t, first.Init())

	second := NewDevWallet(home, logger)
	require.NoError(t, second.Init())
	assert.Equal(t, first.cachedKey, second.cachedKey)
}

func TestDevWalletCreateNym(t *testing.T) {
	dev := newTestWallet(t)

	id := dev.CreateNym(interfaces.DefaultKeyBits, "", "")
	require.Len(t, id, interfaces.NymIDLength)

	// The credential file exists and enumeration sees the nym.
	_, err := os.Stat(filepath.Join(dev.layout.ClientCredentialsDir(), id))
	require.NoError(t, err)
	assert.Equal(t, 1, dev.NymCount())
	assert.Equal(t, id, dev.NymID(0))

	// Ids are unique across calls.
	other := dev.CreateNym(interfaces.DefaultKeyBits, "", "")
	assert.NotEqual(t, id, other)
	assert.Equal(t, 2, dev.NymCount())
}

func TestDevWalletCreateNym_UnsupportedKeyBitsPanics(t *testing.T) {
	dev := newTestWallet(t)
	assert.Panics(t, func() { dev.CreateNym(512, "", "") })
}

func TestDevWalletEnumerationOutOfRange(t *testing.T) {
	dev := newTestWallet(t)
	assert.Equal(t, "", dev.NymID(0))
	assert.Equal(t, "", dev.NymID(-1))
	assert.Equal(t, "", dev.AccountID(5))
	assert.Equal(t, "", dev.ServerID(0))
	assert.Equal(t, "", dev.AssetTypeID(0))
}

func TestDevWalletCreateServerContract(t *testing.T) {
	dev := newTestWallet(t)
	nymID := dev.CreateNym(interfaces.DefaultKeyBits, "", "")

	contractID := dev.CreateServerContract(nymID, "<notaryProviderContract/>")
	require.Len(t, contractID, interfaces.NymIDLength)

	// The stored contract file is armored; decoding it yields the signed text.
	raw, err := os.ReadFile(dev.layout.ContractFile(contractID))
	require.NoError(t, err)
	signed := dev.Decode(string(raw))
	assert.Contains(t, signed, "<notaryProviderContract/>")
	assert.Contains(t, signed, nymID)

	// Sentinel on missing inputs.
	assert.Equal(t, "", dev.CreateServerContract("", "<contract/>"))
	assert.Equal(t, "", dev.CreateServerContract(nymID, ""))
}

func TestDevWalletAddServerContract(t *testing.T) {
	dev := newTestWallet(t)
	nymID := dev.CreateNym(interfaces.DefaultKeyBits, "", "")
	contractID := dev.CreateServerContract(nymID, "<contract/>")

	raw, err := os.ReadFile(dev.layout.ContractFile(contractID))
	require.NoError(t, err)
	signed := dev.Decode(string(raw))

	// Registering the decoded signed contract derives the same server id as
	// the signing step did.
	require.Equal(t, 1, dev.AddServerContract(signed))
	require.Equal(t, 1, dev.ServerCount())
	assert.Equal(t, contractID, dev.ServerID(0))

	// Re-registering is accepted and does not duplicate the server.
	require.Equal(t, 1, dev.AddServerContract(signed))
	assert.Equal(t, 1, dev.ServerCount())

	assert.Equal(t, 0, dev.AddServerContract(""))
}

func TestDevWalletServerOperations(t *testing.T) {
	dev := newTestWallet(t)
	nymID := dev.CreateNym(interfaces.DefaultKeyBits, "", "")
	contractID := dev.CreateServerContract(nymID, "<contract/>")

	raw, err := os.ReadFile(dev.layout.ContractFile(contractID))
	require.NoError(t, err)
	require.Equal(t, 1, dev.AddServerContract(dev.Decode(string(raw))))
	serverID := dev.ServerID(0)

	assert.Equal(t, 1, dev.CheckServerID(serverID, nymID))
	assert.Equal(t, 0, dev.CheckServerID("srv-unknown", nymID))
	assert.Equal(t, 0, dev.CheckServerID(serverID, ""))

	message := dev.RegisterNym(serverID, nymID)
	require.NotEmpty(t, message)
	assert.Equal(t, 1, dev.MessageSuccess(message))
	assert.Equal(t, "", dev.RegisterNym("srv-unknown", nymID))

	reply := dev.CheckUser(serverID, nymID, nymID)
	assert.Contains(t, reply, nymID)
	assert.Equal(t, "", dev.CheckUser(serverID, nymID, ""))
}

func TestDevWalletCreateAssetAccount(t *testing.T) {
	dev := newTestWallet(t)

	fragment := dev.CreateAssetAccount("srv-A", "nym-A", "asset-A")
	// The native library's malformed reply shape, stray marker included.
	assert.True(t, strings.HasPrefix(fragment, "<@createAccount "))
	assert.Contains(t, fragment, "accountID=")
	assert.Equal(t, 1, dev.AccountCount())

	assert.Equal(t, "", dev.CreateAssetAccount("", "nym-A", "asset-A"))
}

func TestDevWalletIssueAssetType(t *testing.T) {
	dev := newTestWallet(t)
	nymID := dev.CreateNym(interfaces.DefaultKeyBits, "", "")

	assetTypeID := dev.CreateAssetContract(nymID, "<assetContract/>")
	require.Len(t, assetTypeID, interfaces.NymIDLength)

	signed := dev.SignedContract("srv-A", nymID, assetTypeID)
	require.NotEmpty(t, signed)

	message := dev.IssueAssetType("srv-A", nymID, signed)
	require.NotEmpty(t, message)
	assert.Equal(t, 1, dev.MessageSuccess(message))
	assert.Equal(t, 1, dev.AssetTypeCount())
	assert.Equal(t, assetTypeID, dev.AssetTypeID(0))

	assert.Equal(t, "", dev.IssueAssetType("srv-A", nymID, ""))
}

func TestDevWalletDecode(t *testing.T) {
	dev := newTestWallet(t)

	assert.Equal(t, "plain text", dev.Decode(armor("plain text")))
	assert.Equal(t, "plain text", dev.Decode("  "+armor("plain text")+"\n"))
	assert.Equal(t, "", dev.Decode("not base64 at all!"))
}
