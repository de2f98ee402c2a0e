package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// IPFSStore implements a contract store on the InterPlanetary File System.
// IPFS is content-addressed, so the name of a stored object is the CID
// returned by Store; Fetch expects a CID as the object name.
type IPFSStore struct {
	shell       *shell.Shell
	host        string
	port        string
	log         *slog.Logger
	locationURI string
}

// NewIPFSStore creates a contract store connected to the IPFS API at the
// specified host and port.
func NewIPFSStore(host, port string, log *slog.Logger) (*IPFSStore, error) {
	apiURL := fmt.Sprintf("%s:%s", host, port)

	return &IPFSStore{
		shell:       shell.NewShell(apiURL),
		host:        host,
		port:        port,
		log:         log,
		locationURI: fmt.Sprintf("ipfs://%s/", apiURL),
	}, nil
}

// Fetch retrieves an object from IPFS by CID. Returns ErrObjectNotFound if
// the content does not exist or ErrStoreUnavailable if the node is not
// accessible.
func (s *IPFSStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	start := time.Now()

	if !s.shell.IsUp() {
		s.log.Warn("IPFS node unavailable",
			slog.String("host", s.host),
			slog.String("port", s.port))
		return nil, interfaces.ErrStoreUnavailable
	}

	reader, err := s.shell.Cat("/ipfs/" + strings.TrimPrefix(name, "/ipfs/"))
	if err != nil {
		if strings.Contains(err.Error(), "no link named") || strings.Contains(err.Error(), "invalid path") {
			s.log.Debug("Object not found in IPFS",
				slog.String("cid", name),
				slog.Duration("duration", time.Since(start)))
			return nil, interfaces.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to fetch data from IPFS: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read data from IPFS: %w", err)
	}

	s.log.Debug("Fetched object from IPFS",
		slog.String("cid", name),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))
	return data, nil
}

// Store adds the data to IPFS and returns its CID. The requested name is
// ignored; content addressing decides the retrieval name.
func (s *IPFSStore) Store(ctx context.Context, name string, data []byte) (string, error) {
	if !s.shell.IsUp() {
		return "", interfaces.ErrStoreUnavailable
	}

	cid, err := s.shell.Add(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to add data to IPFS: %w", err)
	}

	s.log.Debug("Stored object in IPFS",
		slog.String("requestedName", name),
		slog.String("cid", cid),
		slog.Int("size", len(data)))
	return cid, nil
}

// Available checks if the IPFS node is accessible.
func (s *IPFSStore) Available(ctx context.Context) bool {
	return s.shell.IsUp()
}

// Name returns a unique identifier for this store.
func (s *IPFSStore) Name() string {
	return fmt.Sprintf("ipfs-%s-%s", s.host, s.port)
}

// LocationURI returns the URI that identifies this store.
func (s *IPFSStore) LocationURI() string {
	return s.locationURI
}
