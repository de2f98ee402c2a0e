package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ruteri/wallet-provisioning-backend/cmd/flags"
	"github.com/ruteri/wallet-provisioning-backend/httpserver"
)

var flagListenAddr = &cli.StringFlag{
	Name:  "listen-addr",
	Value: "127.0.0.1:8080",
	Usage: "address to listen on for the wallet query API",
}

func main() {
	app := &cli.App{
		Name:  "queryserver",
		Usage: "Serve the read-only wallet query API",
		Flags: append([]cli.Flag{
			flagListenAddr,
			flags.MetricsAddrFlag,
			flags.PprofFlag,
			flags.DrainSecondsFlag,
		}, flags.CommonFlags...),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)

	client, _, err := flags.SetupWallet(cCtx, logger)
	if err != nil {
		logger.Error("Failed to set up wallet", "err", err)
		return err
	}
	defer client.Close()

	cfg := &httpserver.HTTPServerConfig{
		ListenAddr:               cCtx.String(flagListenAddr.Name),
		MetricsAddr:              cCtx.String(flags.MetricsAddrFlag.Name),
		EnablePprof:              cCtx.Bool(flags.PprofFlag.Name),
		Log:                      logger,
		DrainDuration:            time.Duration(cCtx.Int64(flags.DrainSecondsFlag.Name)) * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}

	server, err := httpserver.New(cfg, httpserver.NewHandler(client, logger))
	if err != nil {
		logger.Error("Failed to create server", "err", err)
		return err
	}

	server.RunInBackground()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	logger.Info("Server is running, press Ctrl+C to stop")
	<-exit
	logger.Info("Shutdown signal received")

	server.Shutdown()
	logger.Info("Server shutdown complete")
	return nil
}
