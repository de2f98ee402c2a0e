package wallet

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// createAccountReply is the server's response fragment for account creation.
// On the wire the element name carries a stray '@' marker which must be
// stripped before parsing; see normalizeCreateAccountReply.
type createAccountReply struct {
	XMLName   xml.Name `xml:"createAccount"`
	AccountID string   `xml:"accountID,attr"`
}

// normalizeCreateAccountReply strips the stray '@' marker the native library
// leaves in front of the createAccount element. A fragment without the marker
// is passed through unchanged.
func normalizeCreateAccountReply(fragment string) string {
	return strings.Replace(fragment, "<@createAccount", "<createAccount", 1)
}

// CreateNym generates a new pseudonym in the local wallet and returns its id.
// nymIDSource and altLocation are passed through to the capability and are
// usually empty.
//
// keyBits must be one of interfaces.SupportedKeyBits; anything else is a hard
// abort in the native library, so it is checked here as a precondition and
// panics rather than returning an error. Use interfaces.DefaultKeyBits unless
// you need a specific size.
func (c *Client) CreateNym(keyBits int, nymIDSource, altLocation string) (string, error) {
	if !interfaces.KeyBitsSupported(keyBits) {
		panic(&interfaces.InvariantError{
			Op:     "CreateNym",
			Detail: fmt.Sprintf("unsupported key size %d", keyBits),
		})
	}

	id := c.cap.CreateNym(keyBits, nymIDSource, altLocation)
	if id == "" {
		return "", &interfaces.SentinelReturnError{Op: "CreateNym", Value: id}
	}

	c.log.Debug("Created nym", "nymID", id)
	return id, nil
}

// CreateServerContract signs a server contract with the given nym and returns
// the derived contract id. A zero-length id from the capability is an
// invariant violation, not a recoverable condition.
func (c *Client) CreateServerContract(nymID, contract string) (string, error) {
	contractID := c.cap.CreateServerContract(nymID, contract)
	if len(contractID) == 0 {
		return "", &interfaces.InvariantError{
			Op:     "CreateServerContract",
			Detail: "capability returned zero-length contract id",
		}
	}

	c.log.Debug("Created server contract", "contractID", contractID, "nymID", nymID)
	return contractID, nil
}

// CreateAccount creates an asset account on the given server and returns the
// new account id, extracted from the server's response fragment after
// normalizing the stray marker character.
func (c *Client) CreateAccount(serverID, nymID, assetTypeID string) (string, error) {
	fragment := c.cap.CreateAssetAccount(serverID, nymID, assetTypeID)
	if fragment == "" {
		return "", &interfaces.SentinelReturnError{Op: "CreateAssetAccount", Value: fragment}
	}

	var reply createAccountReply
	if err := xml.Unmarshal([]byte(normalizeCreateAccountReply(fragment)), &reply); err != nil {
		return "", &interfaces.ParseError{Op: "CreateAccount", Err: err}
	}
	if reply.AccountID == "" {
		return "", &interfaces.ParseError{
			Op:  "CreateAccount",
			Err: errors.New("response fragment has no accountID attribute"),
		}
	}

	c.log.Debug("Created asset account", "accountID", reply.AccountID, "serverID", serverID)
	return reply.AccountID, nil
}

// IssueAssetType issues a new asset type on the given server and nym. The
// contract body is read from the stream, signed with the nym, and the signed
// form is dispatched for issuance. The contract content itself is not
// validated locally. Returns the server's response message.
func (c *Client) IssueAssetType(serverID, nymID string, contract io.Reader) (string, error) {
	body, err := io.ReadAll(contract)
	if err != nil {
		return "", fmt.Errorf("failed to read asset contract: %w", err)
	}

	assetTypeID := c.cap.CreateAssetContract(nymID, string(body))
	if assetTypeID == "" {
		return "", &interfaces.InvariantError{
			Op:     "IssueAssetType",
			Detail: "capability returned zero-length asset type id",
		}
	}

	signedContract := c.cap.SignedContract(serverID, nymID, assetTypeID)
	if signedContract == "" {
		return "", &interfaces.SentinelReturnError{Op: "SignedContract", Value: signedContract}
	}

	message := c.cap.IssueAssetType(serverID, nymID, signedContract)
	if message == "" {
		return "", &interfaces.SentinelReturnError{Op: "IssueAssetType", Value: message}
	}

	c.log.Info("Issued asset type", "assetTypeID", assetTypeID, "serverID", serverID)
	return message, nil
}

// RegisterNym registers a nym on a server and returns the server's response
// message. Beyond the empty-string sentinel, the response message itself must
// report success; a message that does not is an invariant violation.
func (c *Client) RegisterNym(serverID, nymID string) (string, error) {
	message := c.cap.RegisterNym(serverID, nymID)
	if message == "" {
		return "", &interfaces.SentinelReturnError{Op: "RegisterNym", Value: message}
	}
	if c.cap.MessageSuccess(message) != 1 {
		return "", &interfaces.InvariantError{
			Op:     "RegisterNym",
			Detail: "server response message does not report success",
		}
	}
	return message, nil
}

// CheckServerID pings the server, verifying it is reachable and the nym is
// known to it. The native library signals success with the integer sentinel 1.
func (c *Client) CheckServerID(serverID, nymID string) bool {
	retval := c.cap.CheckServerID(serverID, nymID)
	c.log.Debug("CheckServerID", "serverID", serverID, "retval", retval)
	return retval == 1
}

// CheckUser requests the public key of targetNymID from the server.
func (c *Client) CheckUser(serverID, nymID, targetNymID string) (string, error) {
	message := c.cap.CheckUser(serverID, nymID, targetNymID)
	if message == "" {
		return "", &interfaces.SentinelReturnError{Op: "CheckUser", Value: message}
	}
	return message, nil
}

// AddServerContract registers a signed server contract in the local wallet.
func (c *Client) AddServerContract(contract string) error {
	if retval := c.cap.AddServerContract(contract); retval != 1 {
		return &interfaces.SentinelReturnError{
			Op:    "AddServerContract",
			Value: fmt.Sprintf("%d", retval),
		}
	}
	return nil
}
