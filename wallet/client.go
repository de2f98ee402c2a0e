package wallet

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// Client owns the process-wide capability handle and translates the native
// library's sentinel return values into typed errors, exactly once, at this
// boundary. The underlying capability is not reentrant, so a Client must not
// be used concurrently; there is one Client per process, initialized once via
// Init and torn down once via Close.
type Client struct {
	cap interfaces.WalletCapability
	log *slog.Logger
}

// NewClient creates a wallet client over the given capability. The client
// does not initialize the capability; call Init before any other method.
func NewClient(cap interfaces.WalletCapability, log *slog.Logger) *Client {
	return &Client{
		cap: cap,
		log: log,
	}
}

// Init brings the capability into a working state and loads the local wallet.
// Call exactly once per process lifetime.
func (c *Client) Init() error {
	if err := c.cap.Init(); err != nil {
		return fmt.Errorf("capability init failed: %w", err)
	}
	c.log.Debug("Wallet capability initialized")
	return nil
}

// Close tears the capability down. The client is unusable afterwards.
func (c *Client) Close() error {
	if err := c.cap.Cleanup(); err != nil {
		return fmt.Errorf("capability cleanup failed: %w", err)
	}
	c.log.Debug("Wallet capability cleaned up")
	return nil
}

// Capability exposes the raw port for components that orchestrate it
// directly. Callers must not re-inspect sentinel values; use the Client
// methods instead.
func (c *Client) Capability() interfaces.WalletCapability {
	return c.cap
}

// Decode reads the armored payload from stream, decodes it via the capability
// and returns the plain text. The stream is consumed exactly once and closed
// on every exit path, normal or failing. A second call on an already closed
// stream fails with the read error.
func (c *Client) Decode(stream io.ReadCloser) (string, error) {
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return "", fmt.Errorf("failed to read armored payload: %w", err)
	}

	decoded := c.cap.Decode(string(data))
	if decoded == "" {
		return "", &interfaces.SentinelReturnError{Op: "Decode", Value: decoded}
	}
	return decoded, nil
}
