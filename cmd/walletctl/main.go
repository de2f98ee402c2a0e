package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ruteri/wallet-provisioning-backend/cmd/flags"
	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/wallet"
)

var flagServerID = &cli.StringFlag{
	Name:  "server-id",
	Usage: "target server id (defaults to the wallet's first server)",
}

var flagNymID = &cli.StringFlag{
	Name:     "nym-id",
	Usage:    "nym id to operate as",
	Required: true,
}

var flagKeyBits = &cli.IntFlag{
	Name:  "key-bits",
	Value: interfaces.DefaultKeyBits,
	Usage: "key size for the new nym (1024, 2048, 4096 or 8192)",
}

var flagContractFile = &cli.StringFlag{
	Name:     "contract",
	Usage:    "path to the asset contract template file",
	Required: true,
}

var flagAssetTypeID = &cli.StringFlag{
	Name:     "asset-type-id",
	Usage:    "asset type id to open the account against",
	Required: true,
}

var flagTargetNymID = &cli.StringFlag{
	Name:     "target-nym-id",
	Usage:    "nym id to look up",
	Required: true,
}

func main() {
	app := &cli.App{
		Name:  "walletctl",
		Usage: "Inspect and operate on the local wallet",
		Flags: flags.CommonFlags,
		Commands: []*cli.Command{
			{
				Name:   "nyms",
				Usage:  "List ids and names of all locally stored nyms",
				Action: withClient(runNyms),
			},
			{
				Name:   "servers",
				Usage:  "List (id, name) of all servers known to the wallet",
				Action: withClient(runServers),
			},
			{
				Name:   "assets",
				Usage:  "List (id, name) of all asset types known to the wallet",
				Action: withClient(runAssets),
			},
			{
				Name:   "accounts",
				Usage:  "List ids of all asset accounts",
				Action: withClient(runAccounts),
			},
			{
				Name:   "create-nym",
				Usage:  "Create a new pseudonym in the local wallet",
				Flags:  []cli.Flag{flagKeyBits},
				Action: withClient(runCreateNym),
			},
			{
				Name:   "register-nym",
				Usage:  "Register a nym on a server",
				Flags:  []cli.Flag{flagNymID, flagServerID},
				Action: withClient(runRegisterNym),
			},
			{
				Name:   "check-server",
				Usage:  "Ping a server to verify it is reachable",
				Flags:  []cli.Flag{flagNymID, flagServerID},
				Action: withClient(runCheckServer),
			},
			{
				Name:   "check-user",
				Usage:  "Request another nym's public key from a server",
				Flags:  []cli.Flag{flagNymID, flagServerID, flagTargetNymID},
				Action: withClient(runCheckUser),
			},
			{
				Name:   "issue-asset",
				Usage:  "Sign an asset contract and issue the asset type on a server",
				Flags:  []cli.Flag{flagNymID, flagServerID, flagContractFile},
				Action: withClient(runIssueAsset),
			},
			{
				Name:   "create-account",
				Usage:  "Open an asset account on a server",
				Flags:  []cli.Flag{flagNymID, flagServerID, flagAssetTypeID},
				Action: withClient(runCreateAccount),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withClient wraps a command action with wallet setup and teardown.
func withClient(action func(*cli.Context, *wallet.Client) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		logger := flags.SetupLogger(cCtx)
		client, _, err := flags.SetupWallet(cCtx, logger)
		if err != nil {
			logger.Error("Failed to set up wallet", "err", err)
			return err
		}
		defer client.Close()
		return action(cCtx, client)
	}
}

// resolveServerID picks the flag value when set, otherwise the wallet's first
// server.
func resolveServerID(cCtx *cli.Context, client *wallet.Client) (string, error) {
	if serverID := cCtx.String(flagServerID.Name); serverID != "" {
		return serverID, nil
	}
	return client.FirstServerID()
}

func runNyms(cCtx *cli.Context, client *wallet.Client) error {
	ids, err := client.NymIDs()
	if err != nil {
		return err
	}
	for _, id := range ids {
		name, err := client.NymName(id)
		if err != nil {
			var sentinelErr *interfaces.SentinelReturnError
			if !errors.As(err, &sentinelErr) {
				return err
			}
			// Unknown and unnamed look the same here; the id is still real.
			name = "(unnamed)"
		}
		fmt.Printf("%s\t%s\n", id, name)
	}
	return nil
}

func runServers(cCtx *cli.Context, client *wallet.Client) error {
	for _, server := range client.Servers() {
		fmt.Printf("%s\t%s\n", server.ID, server.Name)
	}
	return nil
}

func runAssets(cCtx *cli.Context, client *wallet.Client) error {
	for _, asset := range client.Assets() {
		fmt.Printf("%s\t%s\n", asset.ID, asset.Name)
	}
	return nil
}

func runAccounts(cCtx *cli.Context, client *wallet.Client) error {
	for _, id := range client.AccountIDs() {
		fmt.Println(id)
	}
	return nil
}

func runCreateNym(cCtx *cli.Context, client *wallet.Client) error {
	keyBits := cCtx.Int(flagKeyBits.Name)
	if !interfaces.KeyBitsSupported(keyBits) {
		return fmt.Errorf("unsupported key size %d", keyBits)
	}

	id, err := client.CreateNym(keyBits, "", "")
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func runRegisterNym(cCtx *cli.Context, client *wallet.Client) error {
	serverID, err := resolveServerID(cCtx, client)
	if err != nil {
		return err
	}

	message, err := client.RegisterNym(serverID, cCtx.String(flagNymID.Name))
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func runCheckServer(cCtx *cli.Context, client *wallet.Client) error {
	serverID, err := resolveServerID(cCtx, client)
	if err != nil {
		return err
	}

	if !client.CheckServerID(serverID, cCtx.String(flagNymID.Name)) {
		return fmt.Errorf("server %s did not acknowledge the check", serverID)
	}
	fmt.Println("ok")
	return nil
}

func runCheckUser(cCtx *cli.Context, client *wallet.Client) error {
	serverID, err := resolveServerID(cCtx, client)
	if err != nil {
		return err
	}

	message, err := client.CheckUser(serverID, cCtx.String(flagNymID.Name), cCtx.String(flagTargetNymID.Name))
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func runIssueAsset(cCtx *cli.Context, client *wallet.Client) error {
	serverID, err := resolveServerID(cCtx, client)
	if err != nil {
		return err
	}

	contract, err := os.Open(cCtx.String(flagContractFile.Name))
	if err != nil {
		return err
	}
	defer contract.Close()

	message, err := client.IssueAssetType(serverID, cCtx.String(flagNymID.Name), contract)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func runCreateAccount(cCtx *cli.Context, client *wallet.Client) error {
	serverID, err := resolveServerID(cCtx, client)
	if err != nil {
		return err
	}

	accountID, err := client.CreateAccount(serverID, cCtx.String(flagNymID.Name), cCtx.String(flagAssetTypeID.Name))
	if err != nil {
		return err
	}
	fmt.Println(accountID)
	return nil
}
