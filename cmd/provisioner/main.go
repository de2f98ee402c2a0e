package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ruteri/wallet-provisioning-backend/cmd/flags"
	"github.com/ruteri/wallet-provisioning-backend/interfaces"
	"github.com/ruteri/wallet-provisioning-backend/metrics"
	"github.com/ruteri/wallet-provisioning-backend/provision"
	"github.com/ruteri/wallet-provisioning-backend/storage"
)

var flagContract = &cli.StringFlag{
	Name:  "contract",
	Usage: "path to the server contract template file",
}

var flagContractStore = &cli.StringFlag{
	Name:  "contract-store",
	Usage: "contract store URI to fetch the template from (file://, s3://, ipfs://, vault://)",
}

var flagContractName = &cli.StringFlag{
	Name:  "contract-name",
	Value: "server-contract.xml",
	Usage: "template object name within the contract store",
}

var flagArchiveStore = &cli.StringFlag{
	Name:  "archive-store",
	Usage: "optional contract store URI to archive the provisioning transcript to",
}

func main() {
	app := &cli.App{
		Name:  "provisioner",
		Usage: "Convert a client wallet into the bootstrap material for a new server instance",
		Flags: append([]cli.Flag{
			flagContract,
			flagContractStore,
			flagContractName,
			flagArchiveStore,
		}, flags.CommonFlags...),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)

	template, err := openTemplate(cCtx, logger)
	if err != nil {
		logger.Error("Failed to open contract template", "err", err)
		return err
	}

	client, layout, err := flags.SetupWallet(cCtx, logger)
	if err != nil {
		template.Close()
		logger.Error("Failed to set up wallet", "err", err)
		return err
	}
	defer client.Close()

	workflow := &provision.Workflow{
		Client: client,
		Layout: layout,
		Log:    logger,
	}

	artifacts, err := workflow.Run(template)
	if err != nil {
		metrics.ProvisioningRuns.WithLabelValues("failure").Inc()
		logger.Error("Provisioning failed", "err", err)
		return err
	}
	metrics.ProvisioningRuns.WithLabelValues("success").Inc()

	if archiveURI := cCtx.String(flagArchiveStore.Name); archiveURI != "" {
		if err := archiveTranscript(cCtx.Context, logger, archiveURI, artifacts); err != nil {
			// The role transition already happened; a failed archive is not
			// a failed provisioning.
			logger.Warn("Failed to archive provisioning transcript", "err", err)
		}
	}
	return nil
}

// openTemplate resolves the contract template from either a local file path
// or a contract store URI.
func openTemplate(cCtx *cli.Context, logger *slog.Logger) (io.ReadCloser, error) {
	path := cCtx.String(flagContract.Name)
	storeURI := cCtx.String(flagContractStore.Name)

	switch {
	case path != "" && storeURI != "":
		return nil, errors.New("set either --contract or --contract-store, not both")
	case path != "":
		return os.Open(path)
	case storeURI != "":
		location, err := interfaces.NewStoreLocation(storeURI)
		if err != nil {
			return nil, err
		}
		store, err := storage.NewFactory(logger).StoreFor(location)
		if err != nil {
			return nil, err
		}
		data, err := store.Fetch(cCtx.Context, cCtx.String(flagContractName.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contract template: %w", err)
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	default:
		return nil, errors.New("a contract template is required: set --contract or --contract-store")
	}
}

// archiveTranscript stores the emitted artifacts for audit purposes.
func archiveTranscript(ctx context.Context, logger *slog.Logger, storeURI string, artifacts *provision.Artifacts) error {
	location, err := interfaces.NewStoreLocation(storeURI)
	if err != nil {
		return err
	}
	store, err := storage.NewFactory(logger).StoreFor(location)
	if err != nil {
		return err
	}

	var transcript bytes.Buffer
	fmt.Fprintln(&transcript, artifacts.ContractID)
	fmt.Fprintln(&transcript, artifacts.ServerNymID)
	fmt.Fprintln(&transcript, artifacts.CachedKey+"\n~")
	fmt.Fprintln(&transcript, artifacts.SignedContract+"\n~")

	name, err := store.Store(ctx, "provision-"+artifacts.ContractID+".txt", transcript.Bytes())
	if err != nil {
		return err
	}
	logger.Info("Archived provisioning transcript", "object", name, "store", store.Name())
	return nil
}
