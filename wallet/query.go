package wallet

import (
	"errors"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// ErrNoServers is returned by FirstServerID when the wallet knows no servers.
var ErrNoServers = errors.New("no servers in wallet")

// NymIDs returns the ids of all locally stored nyms, in the capability's
// enumeration order. A nym id is never legitimately empty, so an empty entry
// is translated into a SentinelReturnError.
func (c *Client) NymIDs() ([]string, error) {
	count := c.cap.NymCount()
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := c.cap.NymID(i)
		if id == "" {
			return nil, &interfaces.SentinelReturnError{Op: "NymID", Value: id}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// NymName returns the display name for a nym id.
//
// The native library returns an empty string both when the nym is unknown and
// when it exists but has no name; the two cases cannot be told apart, and both
// surface as a SentinelReturnError. This ambiguity is a documented property of
// the capability contract, preserved rather than resolved.
func (c *Client) NymName(nymID string) (string, error) {
	name := c.cap.NymName(nymID)
	if name == "" {
		return "", &interfaces.SentinelReturnError{Op: "NymName", Value: name}
	}
	return name, nil
}

// AccountIDs returns the ids of all asset accounts in the wallet.
//
// Unlike NymIDs, empty entries are preserved in the result rather than
// treated as failures. Whether that tolerance is intentional in the native
// library is unclear; the asymmetry is kept as documented.
func (c *Client) AccountIDs() []string {
	count := c.cap.AccountCount()
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, c.cap.AccountID(i))
	}
	return ids
}

// Servers returns (id, name) descriptors for all servers known to the wallet,
// in the capability's enumeration order. Names are fetched per id.
func (c *Client) Servers() []interfaces.ServerDescriptor {
	count := c.cap.ServerCount()
	servers := make([]interfaces.ServerDescriptor, 0, count)
	for i := 0; i < count; i++ {
		id := c.cap.ServerID(i)
		servers = append(servers, interfaces.ServerDescriptor{
			ID:   id,
			Name: c.cap.ServerName(id),
		})
	}
	return servers
}

// Assets returns (id, name) descriptors for all asset types known to the
// wallet, in the capability's enumeration order.
func (c *Client) Assets() []interfaces.AssetDescriptor {
	count := c.cap.AssetTypeCount()
	assets := make([]interfaces.AssetDescriptor, 0, count)
	for i := 0; i < count; i++ {
		id := c.cap.AssetTypeID(i)
		assets = append(assets, interfaces.AssetDescriptor{
			ID:   id,
			Name: c.cap.AssetTypeName(id),
		})
	}
	return assets
}

// FirstServerID returns the id of the first server in the wallet, a common
// convenience for single-server installations.
func (c *Client) FirstServerID() (string, error) {
	servers := c.Servers()
	if len(servers) == 0 {
		return "", ErrNoServers
	}
	return servers[0].ID, nil
}
