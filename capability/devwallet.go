package capability

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/provision"
)

// DevWallet is an in-process WalletCapability implementation backed by the
// standard wallet directory layout, suitable for development and testing.
// It mimics the native library's observable behavior, including its sentinel
// conventions, the stray marker in the createAccount response fragment, and
// the hard abort on unsupported key sizes. It performs no real cryptography:
// ids are one-way hashes and "signing" is structural. Production deployments
// bind interfaces.WalletCapability to the native library instead.
//
// Like the native library, a DevWallet is process-wide singleton state and is
// not safe for concurrent use.
type DevWallet struct {
	layout provision.Layout
	log    *slog.Logger

	cachedKey string
	nyms      []interfaces.ServerDescriptor
	accounts  []string
	servers   []interfaces.ServerDescriptor
	assets    []interfaces.AssetDescriptor
	contracts map[string]string // contract id -> signed text
}

// NewDevWallet creates a development wallet rooted at the given home
// directory. Call Init before use.
func NewDevWallet(home string, log *slog.Logger) *DevWallet {
	return &DevWallet{
		layout:    provision.NewLayout(home),
		log:       log,
		contracts: map[string]string{},
	}
}

// deriveID produces a 43-character identifier, the unpadded base64 form of a
// SHA3-256 digest of the source material.
func deriveID(source string) string {
	digest := sha3.Sum256([]byte(source))
	return base64.RawURLEncoding.EncodeToString(digest[:])
}

// armor encodes plain text the way the native library stores payloads.
func armor(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// Init creates the client-role directory tree and the wallet metadata file if
// they do not exist, then loads the wallet state.
func (d *DevWallet) Init() error {
	for _, dir := range []string{d.layout.ContractsDir(), d.layout.ClientCredentialsDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create wallet directory: %w", err)
		}
	}

	if _, err := os.Stat(d.layout.WalletFile()); os.IsNotExist(err) {
		if err := d.writeWalletFile(); err != nil {
			return err
		}
	}
	return d.loadWalletFile()
}

// Cleanup releases the wallet. The dev implementation holds no native state.
func (d *DevWallet) Cleanup() error {
	d.log.Debug("Dev wallet cleaned up")
	return nil
}

// writeWalletFile generates a cached signing key and persists the armored
// wallet metadata document.
func (d *DevWallet) writeWalletFile() error {
	d.cachedKey = armor(uuid.NewString())
	doc := fmt.Sprintf("<wallet version=\"1.0\">\n<cachedKey>\n%s\n</cachedKey>\n</wallet>\n", d.cachedKey)
	if err := os.WriteFile(d.layout.WalletFile(), []byte(armor(doc)), 0600); err != nil {
		return fmt.Errorf("failed to write wallet metadata: %w", err)
	}
	return nil
}

// loadWalletFile restores the cached key from the on-disk wallet metadata.
func (d *DevWallet) loadWalletFile() error {
	raw, err := os.ReadFile(d.layout.WalletFile())
	if err != nil {
		return fmt.Errorf("failed to read wallet metadata: %w", err)
	}
	doc := d.Decode(string(raw))
	if doc == "" {
		return fmt.Errorf("wallet metadata is not decodable")
	}
	if start := strings.Index(doc, "<cachedKey>"); start >= 0 {
		rest := doc[start+len("<cachedKey>"):]
		if end := strings.Index(rest, "</cachedKey>"); end >= 0 {
			d.cachedKey = strings.TrimSpace(rest[:end])
		}
	}
	return nil
}

// CreateNym generates a new pseudonym. Mirroring the native library, an
// unsupported key size aborts instead of returning a sentinel.
func (d *DevWallet) CreateNym(keyBits int, nymIDSource, altLocation string) string {
	if !interfaces.KeyBitsSupported(keyBits) {
		panic(fmt.Sprintf("capability: unsupported key size %d", keyBits))
	}

	id := deriveID("nym:" + nymIDSource + ":" + uuid.NewString())
	credential := armor(fmt.Sprintf("credential for %s (%d bits)", id, keyBits))
	path := filepath.Join(d.layout.ClientCredentialsDir(), id)
	if err := os.WriteFile(path, []byte(credential), 0600); err != nil {
		d.log.Error("Failed to write nym credential", "err", err, "nymID", id)
		return ""
	}

	d.nyms = append(d.nyms, interfaces.ServerDescriptor{ID: id})
	return id
}

func (d *DevWallet) NymCount() int { return len(d.nyms) }

func (d *DevWallet) NymID(index int) string {
	if index < 0 || index >= len(d.nyms) {
		return ""
	}
	return d.nyms[index].ID
}

func (d *DevWallet) NymName(nymID string) string {
	for _, nym := range d.nyms {
		if nym.ID == nymID {
			return nym.Name
		}
	}
	return ""
}

func (d *DevWallet) AccountCount() int { return len(d.accounts) }

func (d *DevWallet) AccountID(index int) string {
	if index < 0 || index >= len(d.accounts) {
		return ""
	}
	return d.accounts[index]
}

func (d *DevWallet) ServerCount() int { return len(d.servers) }

func (d *DevWallet) ServerID(index int) string {
	if index < 0 || index >= len(d.servers) {
		return ""
	}
	return d.servers[index].ID
}

func (d *DevWallet) ServerName(serverID string) string {
	for _, server := range d.servers {
		if server.ID == serverID {
			return server.Name
		}
	}
	return ""
}

func (d *DevWallet) AssetTypeCount() int { return len(d.assets) }

func (d *DevWallet) AssetTypeID(index int) string {
	if index < 0 || index >= len(d.assets) {
		return ""
	}
	return d.assets[index].ID
}

func (d *DevWallet) AssetTypeName(assetTypeID string) string {
	for _, asset := range d.assets {
		if asset.ID == assetTypeID {
			return asset.Name
		}
	}
	return ""
}

// CreateServerContract signs the contract structurally, stores the armored
// signed form under contracts/<id> and returns the derived contract id.
func (d *DevWallet) CreateServerContract(nymID, contract string) string {
	if nymID == "" || contract == "" {
		return ""
	}

	signed := fmt.Sprintf("<signedContract nymID=%q>\n%s\n</signedContract>\n", nymID, contract)
	id := deriveID("server-contract:" + signed)

	if err := os.WriteFile(d.layout.ContractFile(id), []byte(armor(signed)), 0600); err != nil {
		d.log.Error("Failed to write signed contract", "err", err, "contractID", id)
		return ""
	}
	d.contracts[id] = signed
	return id
}

// CreateAssetContract signs an asset contract and returns the asset type id.
func (d *DevWallet) CreateAssetContract(nymID, contract string) string {
	if nymID == "" || contract == "" {
		return ""
	}
	signed := fmt.Sprintf("<signedAssetContract nymID=%q>\n%s\n</signedAssetContract>\n", nymID, contract)
	id := deriveID("asset-contract:" + signed)
	d.contracts[id] = signed
	return id
}

func (d *DevWallet) SignedContract(serverID, nymID, assetTypeID string) string {
	return d.contracts[assetTypeID]
}

// CreateAssetAccount reproduces the native library's malformed response
// fragment, stray '@' marker included.
func (d *DevWallet) CreateAssetAccount(serverID, nymID, assetTypeID string) string {
	if serverID == "" || nymID == "" || assetTypeID == "" {
		return ""
	}
	accountID := deriveID("account:" + serverID + ":" + nymID + ":" + assetTypeID)
	d.accounts = append(d.accounts, accountID)
	return fmt.Sprintf("<@createAccount success=\"true\" accountID=%q />", accountID)
}

func (d *DevWallet) IssueAssetType(serverID, nymID, signedContract string) string {
	if signedContract == "" {
		return ""
	}
	assetTypeID := deriveID("asset-contract:" + signedContract)
	d.assets = append(d.assets, interfaces.AssetDescriptor{ID: assetTypeID})
	return fmt.Sprintf("<issueAssetTypeResponse success=\"true\" assetTypeID=%q />", assetTypeID)
}

func (d *DevWallet) RegisterNym(serverID, nymID string) string {
	if !d.knownServer(serverID) || nymID == "" {
		return ""
	}
	return fmt.Sprintf("<registerNymResponse success=\"true\" nymID=%q />", nymID)
}

func (d *DevWallet) knownServer(serverID string) bool {
	for _, server := range d.servers {
		if server.ID == serverID {
			return true
		}
	}
	return false
}

func (d *DevWallet) CheckServerID(serverID, nymID string) int {
	if d.knownServer(serverID) && nymID != "" {
		return 1
	}
	return 0
}

func (d *DevWallet) CheckUser(serverID, nymID, targetNymID string) string {
	if !d.knownServer(serverID) || targetNymID == "" {
		return ""
	}
	return fmt.Sprintf("<checkUserResponse success=\"true\" nymID=%q />", targetNymID)
}

func (d *DevWallet) MessageSuccess(message string) int {
	if strings.Contains(message, "success=\"true\"") {
		return 1
	}
	return 0
}

// AddServerContract registers a signed server contract in the wallet.
func (d *DevWallet) AddServerContract(contract string) int {
	if contract == "" {
		return 0
	}
	id := deriveID("server-contract:" + contract)
	if !d.knownServer(id) {
		d.servers = append(d.servers, interfaces.ServerDescriptor{ID: id})
	}
	return 1
}

// Decode reverses the armor encoding. Malformed input yields the empty
// sentinel, as in the native library.
func (d *DevWallet) Decode(data string) string {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return ""
	}
	return string(decoded)
}
