package flags

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ruteri/wallet-provisioning-backend/capability"
	"github.com/ruteri/wallet-provisioning-backend/provision"
	"github.com/ruteri/wallet-provisioning-backend/wallet"
)

// WalletHome resolves the wallet home directory from flags, falling back to
// the conventional default.
func WalletHome(cCtx *cli.Context) (string, error) {
	if home := cCtx.String(HomeFlag.Name); home != "" {
		return home, nil
	}
	return provision.DefaultHome()
}

// SetupWallet binds the configured capability implementation, removes any
// stale lock file and initializes the wallet client. The caller owns the
// returned client and must Close it once.
func SetupWallet(cCtx *cli.Context, logger *slog.Logger) (*wallet.Client, provision.Layout, error) {
	home, err := WalletHome(cCtx)
	if err != nil {
		return nil, provision.Layout{}, err
	}
	layout := provision.NewLayout(home)

	var client *wallet.Client
	switch kind := cCtx.String(CapabilityFlag.Name); kind {
	case "dev":
		client = wallet.NewClient(capability.NewDevWallet(home, logger), logger)
	default:
		return nil, layout, fmt.Errorf("unknown capability implementation %q", kind)
	}

	if err := layout.RemoveStalePID(logger); err != nil {
		return nil, layout, err
	}
	if err := client.Init(); err != nil {
		return nil, layout, err
	}
	return client, layout, nil
}
