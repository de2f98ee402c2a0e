package wallet

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

func testClient(cap interfaces.WalletCapability) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(cap, logger)
}

func TestNymIDs(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("NymCount").Return(3)
	mockCap.On("NymID", 0).Return("nym-A")
	mockCap.On("NymID", 1).Return("nym-B")
	mockCap.On("NymID", 2).Return("nym-C")

	ids, err := testClient(mockCap).NymIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"nym-A", "nym-B", "nym-C"}, ids)
	mockCap.AssertExpectations(t)
}

func TestNymIDs_EmptyWallet(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("NymCount").Return(0)

	ids, err := testClient(mockCap).NymIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestNymIDs_EmptyEntryIsError(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("NymCount").Return(2)
	mockCap.On("NymID", 0).Return("nym-A")
	mockCap.On("NymID", 1).Return("")

	ids, err := testClient(mockCap).NymIDs()
	require.Error(t, err)
	assert.Nil(t, ids)

	var sentinelErr *interfaces.SentinelReturnError
	require.True(t, errors.As(err, &sentinelErr))
	assert.Equal(t, "NymID", sentinelErr.Op)
}

func TestNymName(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("NymName", "nym-A").Return("alice")

	name, err := testClient(mockCap).NymName("nym-A")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestNymName_EmptyIsError(t *testing.T) {
	// Unknown nym and unnamed nym are indistinguishable; both must error.
	mockCap := new(MockCapability)
	mockCap.On("NymName", "nym-unknown").Return("")

	_, err := testClient(mockCap).NymName("nym-unknown")
	var sentinelErr *interfaces.SentinelReturnError
	require.True(t, errors.As(err, &sentinelErr))
}

func TestAccountIDs_PreservesEmptyEntries(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("AccountCount").Return(3)
	mockCap.On("AccountID", 0).Return("acct-A")
	mockCap.On("AccountID", 1).Return("")
	mockCap.On("AccountID", 2).Return("acct-C")

	ids := testClient(mockCap).AccountIDs()
	assert.Equal(t, []string{"acct-A", "", "acct-C"}, ids)
}

func TestServers(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("ServerCount").Return(2)
	mockCap.On("ServerID", 0).Return("srv-A")
	mockCap.On("ServerID", 1).Return("srv-B")
	mockCap.On("ServerName", "srv-A").Return("transactions-A")
	mockCap.On("ServerName", "srv-B").Return("")

	servers := testClient(mockCap).Servers()
	assert.Equal(t, []interfaces.ServerDescriptor{
		{ID: "srv-A", Name: "transactions-A"},
		{ID: "srv-B", Name: ""},
	}, servers)
}

func TestAssets(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("AssetTypeCount").Return(1)
	mockCap.On("AssetTypeID", 0).Return("asset-A")
	mockCap.On("AssetTypeName", "asset-A").Return("silver grams")

	assets := testClient(mockCap).Assets()
	assert.Equal(t, []interfaces.AssetDescriptor{{ID: "asset-A", Name: "silver grams"}}, assets)
}

func TestFirstServerID(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("ServerCount").Return(2)
	mockCap.On("ServerID", 0).Return("srv-A")
	mockCap.On("ServerID", 1).Return("srv-B")
	mockCap.On("ServerName", "srv-A").Return("")
	mockCap.On("ServerName", "srv-B").Return("")

	id, err := testClient(mockCap).FirstServerID()
	require.NoError(t, err)
	assert.Equal(t, "srv-A", id)
}

func TestFirstServerID_NoServers(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("ServerCount").Return(0)

	_, err := testClient(mockCap).FirstServerID()
	assert.ErrorIs(t, err, ErrNoServers)
}
