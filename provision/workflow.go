package provision

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/wallet"
)

// Artifacts holds the four pieces of bootstrap material produced by a
// provisioning run, in the order they are emitted to the transcript.
type Artifacts struct {
	// ContractID is the id of the newly signed server contract.
	ContractID string

	// ServerNymID is the id of the nym the server will operate as.
	ServerNymID string

	// CachedKey is the wallet's cached signing key material, decoded.
	CachedKey string

	// SignedContract is the decoded signed server contract text.
	SignedContract string
}

// Workflow converts a freshly initialized client wallet into the bootstrap
// material for a brand-new server instance. The procedure is strictly
// ordered, single-shot and best-effort: any failure aborts the whole run, and
// partially completed filesystem moves are not rolled back. It is meant to be
// run once, interactively, with a human able to intervene between attempts.
//
// The role transition (deleting client_data after moving credentials into
// server_data) is irreversible and destroys the client identity's local
// state. The wallet metadata is read before any mutation, so a missing or
// malformed wallet file aborts with client_data untouched.
type Workflow struct {
	// Client is the initialized wallet client.
	Client *wallet.Client

	// Layout is the wallet directory tree to transition.
	Layout Layout

	// Transcript receives the four artifacts for manual copying into the
	// server configuration. Defaults to os.Stdout. The handoff is deliberately
	// manual: programmatic server-file construction crashes the native
	// library and must not be attempted.
	Transcript io.Writer

	Log *slog.Logger
}

// walletMetadata is the decoded wallet.xml document. Only the cached key is
// extracted here.
type walletMetadata struct {
	XMLName   xml.Name `xml:"wallet"`
	CachedKey string   `xml:"cachedKey"`
}

// Run executes the provisioning procedure and returns the produced bootstrap
// artifacts. The contract template stream is consumed exactly once and closed
// on every exit path.
func (w *Workflow) Run(contractTemplate io.ReadCloser) (*Artifacts, error) {
	defer contractTemplate.Close()

	transcript := w.Transcript
	if transcript == nil {
		transcript = os.Stdout
	}

	// Step 1: create the nym the server will operate as.
	serverNym, err := w.Client.CreateNym(interfaces.DefaultKeyBits, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to create server nym: %w", err)
	}
	w.Log.Info("Created server nym", "nymID", serverNym)

	// Step 2: read the full contract template.
	template, err := io.ReadAll(contractTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract template: %w", err)
	}

	// Step 3: sign the server contract.
	contractID, err := w.Client.CreateServerContract(serverNym, string(template))
	if err != nil {
		return nil, fmt.Errorf("failed to create server contract: %w", err)
	}
	w.Log.Info("Signed server contract", "contractID", contractID)

	// Step 4: decode the wallet metadata and extract the cached signing key.
	// This read precedes all filesystem mutation.
	cachedKey, err := w.readCachedKey()
	if err != nil {
		return nil, err
	}

	// Step 5: load and decode the signed contract file written in step 3.
	signedContract, err := w.readSignedContract(contractID)
	if err != nil {
		return nil, err
	}

	// Step 6: move the credentials subtree into server_data and delete the
	// client-side data. From here on the installation is server-role.
	if err := w.transitionRole(); err != nil {
		return nil, err
	}

	artifacts := &Artifacts{
		ContractID:     contractID,
		ServerNymID:    serverNym,
		CachedKey:      cachedKey,
		SignedContract: signedContract,
	}

	// Step 7: emit the artifacts for manual transcription into the server
	// configuration.
	w.emitTranscript(transcript, artifacts)

	// Step 8: register the signed contract in the now server-role wallet.
	if err := w.Client.AddServerContract(signedContract); err != nil {
		return nil, fmt.Errorf("failed to re-register signed contract: %w", err)
	}

	w.Log.Info("Provisioning complete", "contractID", contractID, "nymID", serverNym)
	return artifacts, nil
}

// readCachedKey decodes wallet.xml and extracts the cachedKey element text.
func (w *Workflow) readCachedKey() (string, error) {
	walletFile, err := os.Open(w.Layout.WalletFile())
	if err != nil {
		return "", fmt.Errorf("failed to open wallet metadata: %w", err)
	}

	walletXML, err := w.Client.Decode(walletFile)
	if err != nil {
		return "", fmt.Errorf("failed to decode wallet metadata: %w", err)
	}

	var meta walletMetadata
	if err := xml.Unmarshal([]byte(walletXML), &meta); err != nil {
		return "", &interfaces.ParseError{Op: "readCachedKey", Err: err}
	}

	cachedKey := strings.TrimSpace(meta.CachedKey)
	if cachedKey == "" {
		return "", &interfaces.ParseError{
			Op:  "readCachedKey",
			Err: fmt.Errorf("wallet metadata has no cachedKey element"),
		}
	}
	return cachedKey, nil
}

// readSignedContract loads the signed contract file produced by the signing
// step and decodes it.
func (w *Workflow) readSignedContract(contractID string) (string, error) {
	contractFile, err := os.Open(w.Layout.ContractFile(contractID))
	if err != nil {
		return "", fmt.Errorf("failed to open signed contract: %w", err)
	}

	signedContract, err := w.Client.Decode(contractFile)
	if err != nil {
		return "", fmt.Errorf("failed to decode signed contract: %w", err)
	}
	return signedContract, nil
}

// transitionRole copies the credentials subtree into server_data and removes
// the entire client_data tree. There is no rollback if a later step fails.
func (w *Workflow) transitionRole() error {
	serverData := w.Layout.ServerDataDir()
	if err := os.MkdirAll(serverData, 0700); err != nil {
		return fmt.Errorf("failed to create server data directory: %w", err)
	}

	if err := os.CopyFS(w.Layout.ServerCredentialsDir(), os.DirFS(w.Layout.ClientCredentialsDir())); err != nil {
		return fmt.Errorf("failed to copy credentials to server data: %w", err)
	}

	if err := os.RemoveAll(w.Layout.ClientDataDir()); err != nil {
		return fmt.Errorf("failed to remove client data: %w", err)
	}

	w.Log.Info("Transitioned installation to server role",
		slog.String("serverData", serverData))
	return nil
}

// emitTranscript prints the four artifacts in order. The multiline blocks are
// terminated with a '~' line so they can be pasted into the interactive
// server configuration prompt.
func (w *Workflow) emitTranscript(out io.Writer, a *Artifacts) {
	fmt.Fprintln(out, a.ContractID)
	fmt.Fprintln(out, a.ServerNymID)
	fmt.Fprintln(out, a.CachedKey+"\n~")
	fmt.Fprintln(out, a.SignedContract+"\n~")
}
