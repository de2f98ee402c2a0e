package provision

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Layout describes the on-disk wallet directory tree rooted at a configured
// home path. A client-role installation holds client_data/ (wallet metadata,
// signed contracts, credentials); after provisioning the installation holds
// server_data/credentials/ instead. Exactly one of the two role directories
// exists at any time for a given installation.
type Layout struct {
	Home string
}

// DefaultHome returns the conventional wallet home, ~/.ot.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ot"), nil
}

// NewLayout creates a layout rooted at the given home path.
func NewLayout(home string) Layout {
	return Layout{Home: home}
}

// ClientDataDir is the client-role data directory.
func (l Layout) ClientDataDir() string {
	return filepath.Join(l.Home, "client_data")
}

// ServerDataDir is the server-role data directory.
func (l Layout) ServerDataDir() string {
	return filepath.Join(l.Home, "server_data")
}

// WalletFile is the armored wallet metadata file.
func (l Layout) WalletFile() string {
	return filepath.Join(l.ClientDataDir(), "wallet.xml")
}

// ContractsDir holds signed contract files, named by contract id.
func (l Layout) ContractsDir() string {
	return filepath.Join(l.ClientDataDir(), "contracts")
}

// ContractFile is the signed contract file for the given contract id.
func (l Layout) ContractFile(contractID string) string {
	return filepath.Join(l.ContractsDir(), contractID)
}

// ClientCredentialsDir holds the client-role key material.
func (l Layout) ClientCredentialsDir() string {
	return filepath.Join(l.ClientDataDir(), "credentials")
}

// ServerCredentialsDir holds the key material after the role transition.
func (l Layout) ServerCredentialsDir() string {
	return filepath.Join(l.ServerDataDir(), "credentials")
}

// PIDFile is the native library's lock file.
func (l Layout) PIDFile() string {
	return filepath.Join(l.ClientDataDir(), "ot.pid")
}

// RemoveStalePID removes the lock file if one exists. There should not be a
// long-running wallet client anyway; an existing PID file indicates a crashed
// process, not a running instance.
func (l Layout) RemoveStalePID(log *slog.Logger) error {
	pidFile := l.PIDFile()
	if _, err := os.Stat(pidFile); os.IsNotExist(err) {
		return nil
	}
	log.Info("Removing stale lock file", "path", pidFile)
	if err := os.Remove(pidFile); err != nil {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}
