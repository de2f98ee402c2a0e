package wallet

import (
	"github.com/stretchr/testify/mock"
)

// MockCapability mocks the interfaces.WalletCapability port.
type MockCapability struct {
	mock.Mock
}

// Init mocks the Init method
func (m *MockCapability) Init() error {
	args := m.Called()
	return args.Error(0)
}

// Cleanup mocks the Cleanup method
func (m *MockCapability) Cleanup() error {
	args := m.Called()
	return args.Error(0)
}

// CreateNym mocks the CreateNym method
func (m *MockCapability) CreateNym(keyBits int, nymIDSource, altLocation string) string {
	args := m.Called(keyBits, nymIDSource, altLocation)
	return args.String(0)
}

// NymCount mocks the NymCount method
func (m *MockCapability) NymCount() int {
	args := m.Called()
	return args.Int(0)
}

// NymID mocks the NymID method
func (m *MockCapability) NymID(index int) string {
	args := m.Called(index)
	return args.String(0)
}

// NymName mocks the NymName method
func (m *MockCapability) NymName(nymID string) string {
	args := m.Called(nymID)
	return args.String(0)
}

// AccountCount mocks the AccountCount method
func (m *MockCapability) AccountCount() int {
	args := m.Called()
	return args.Int(0)
}

// AccountID mocks the AccountID method
func (m *MockCapability) AccountID(index int) string {
	args := m.Called(index)
	return args.String(0)
}

// ServerCount mocks the ServerCount method
func (m *MockCapability) ServerCount() int {
	args := m.Called()
	return args.Int(0)
}

// ServerID mocks the ServerID method
func (m *MockCapability) ServerID(index int) string {
	args := m.Called(index)
	return args.String(0)
}

// ServerName mocks the ServerName method
func (m *MockCapability) ServerName(serverID string) string {
	args := m.Called(serverID)
	return args.String(0)
}

// AssetTypeCount mocks the AssetTypeCount method
func (m *MockCapability) AssetTypeCount() int {
	args := m.Called()
	return args.Int(0)
}

// AssetTypeID mocks the AssetTypeID method
func (m *MockCapability) AssetTypeID(index int) string {
	args := m.Called(index)
	return args.String(0)
}

// AssetTypeName mocks the AssetTypeName method
func (m *MockCapability) AssetTypeName(assetTypeID string) string {
	args := m.Called(assetTypeID)
	return args.String(0)
}

// CreateServerContract mocks the CreateServerContract method
func (m *MockCapability) CreateServerContract(nymID, contract string) string {
	args := m.Called(nymID, contract)
	return args.String(0)
}

// CreateAssetContract mocks the CreateAssetContract method
func (m *MockCapability) CreateAssetContract(nymID, contract string) string {
	args := m.Called(nymID, contract)
	return args.String(0)
}

// SignedContract mocks the SignedContract method
func (m *MockCapability) SignedContract(serverID, nymID, assetTypeID string) string {
	args := m.Called(serverID, nymID, assetTypeID)
	return args.String(0)
}

// CreateAssetAccount mocks the CreateAssetAccount method
func (m *MockCapability) CreateAssetAccount(serverID, nymID, assetTypeID string) string {
	args := m.Called(serverID, nymID, assetTypeID)
	return args.String(0)
}

// IssueAssetType mocks the IssueAssetType method
func (m *MockCapability) IssueAssetType(serverID, nymID, signedContract string) string {
	args := m.Called(serverID, nymID, signedContract)
	return args.String(0)
}

// RegisterNym mocks the RegisterNym method
func (m *MockCapability) RegisterNym(serverID, nymID string) string {
	args := m.Called(serverID, nymID)
	return args.String(0)
}

// CheckServerID mocks the CheckServerID method
func (m *MockCapability) CheckServerID(serverID, nymID string) int {
	args := m.Called(serverID, nymID)
	return args.Int(0)
}

// CheckUser mocks the CheckUser method
func (m *MockCapability) CheckUser(serverID, nymID, targetNymID string) string {
	args := m.Called(serverID, nymID, targetNymID)
	return args.String(0)
}

// MessageSuccess mocks the MessageSuccess method
func (m *MockCapability) MessageSuccess(message string) int {
	args := m.Called(message)
	return args.Int(0)
}

// AddServerContract mocks the AddServerContract method
func (m *MockCapability) AddServerContract(contract string) int {
	args := m.Called(contract)
	return args.Int(0)
}

// Decode mocks the Decode method
func (m *MockCapability) Decode(data string) string {
	args := m.Called(data)
	return args.String(0)
}
