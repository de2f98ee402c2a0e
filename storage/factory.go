package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// Factory creates contract stores from location URIs and manages
// multi-backend configurations for redundant storage.
type Factory struct {
	log *slog.Logger
}

// NewFactory creates a contract store factory.
func NewFactory(logger *slog.Logger) *Factory {
	return &Factory{log: logger}
}

// StoreFor creates a contract store from a parsed location.
//
// Supported schemes:
//   - file:///var/lib/wallet/contracts/ - local filesystem
//   - s3://bucket/prefix/?region=us-west-2 - S3 or compatible object storage
//   - ipfs://host:5001/ - IPFS (object names are CIDs)
//   - vault://vault.example.com:8200/secret/wallet?tls=true - Vault KV v2
//
// Returns an error if the scheme is unsupported.
func (f *Factory) StoreFor(location interfaces.StoreLocation) (interfaces.ContractStore, error) {
	switch location.Scheme {
	case "file":
		return f.createFileStore(location)
	case "s3":
		return f.createS3Store(location)
	case "ipfs":
		return f.createIPFSStore(location)
	case "vault":
		return f.createVaultStore(location)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", interfaces.ErrInvalidStoreURI, location.Scheme)
	}
}

// MultiStoreFor creates a multi-backend store from a list of locations,
// skipping locations that fail to construct. Returns an error if no valid
// backend could be created.
func (f *Factory) MultiStoreFor(locations []interfaces.StoreLocation) (interfaces.ContractStore, error) {
	backends := make([]interfaces.ContractStore, 0, len(locations))

	for _, location := range locations {
		backend, err := f.StoreFor(location)
		if err != nil {
			f.log.Warn("Failed to create contract store",
				"err", err,
				slog.String("locationURI", location.String()))
			continue
		}
		backends = append(backends, backend)
	}

	if len(backends) == 0 {
		return nil, fmt.Errorf("no valid contract stores created")
	}
	return NewMultiStore(backends, f.log), nil
}

// createFileStore creates a filesystem store.
// URI format: file:///absolute/path or file://relative/path
func (f *Factory) createFileStore(location interfaces.StoreLocation) (interfaces.ContractStore, error) {
	f.log.Debug("Creating file store", slog.String("uri", location.String()))

	baseDir := location.Path
	if location.Host != "" {
		// file://relative/path parses the first segment as host
		baseDir = location.Host + location.Path
	}
	if baseDir == "" {
		return nil, fmt.Errorf("%w: file URI has no path", interfaces.ErrInvalidStoreURI)
	}
	return NewFileStore(baseDir, f.log)
}

// createS3Store creates an S3 store.
// URI format: s3://[accessKey:secretKey@]bucket/prefix/?region=r&endpoint=e
func (f *Factory) createS3Store(location interfaces.StoreLocation) (interfaces.ContractStore, error) {
	f.log.Debug("Creating S3 store", slog.String("uri", location.String()))

	bucket := location.Host
	if bucket == "" {
		return nil, fmt.Errorf("%w: s3 URI has no bucket", interfaces.ErrInvalidStoreURI)
	}

	prefix := strings.TrimPrefix(location.Path, "/")
	region := location.GetParam("region")
	if region == "" {
		region = "us-east-1"
	}
	endpoint := location.GetParam("endpoint")

	var accessKey, secretKey string
	if location.Auth != "" {
		parts := strings.SplitN(location.Auth, ":", 2)
		accessKey = parts[0]
		if len(parts) > 1 {
			secretKey = parts[1]
		}
	}

	return NewS3Store(bucket, prefix, region, endpoint, accessKey, secretKey, f.log)
}

// createIPFSStore creates an IPFS store.
// URI format: ipfs://host:port/
func (f *Factory) createIPFSStore(location interfaces.StoreLocation) (interfaces.ContractStore, error) {
	f.log.Debug("Creating IPFS store", slog.String("uri", location.String()))

	host, port := location.Host, "5001"
	if i := strings.LastIndex(location.Host, ":"); i >= 0 {
		host, port = location.Host[:i], location.Host[i+1:]
	}
	if host == "" {
		return nil, fmt.Errorf("%w: ipfs URI has no host", interfaces.ErrInvalidStoreURI)
	}
	return NewIPFSStore(host, port, f.log)
}

// createVaultStore creates a Vault store.
// URI format: vault://host:port/mount/data/path?tls=true with the token taken
// from the auth part or the VAULT_TOKEN environment the client inherits.
func (f *Factory) createVaultStore(location interfaces.StoreLocation) (interfaces.ContractStore, error) {
	f.log.Debug("Creating Vault store", slog.String("uri", location.String()))

	if location.Host == "" {
		return nil, fmt.Errorf("%w: vault URI has no host", interfaces.ErrInvalidStoreURI)
	}

	scheme := "http"
	if location.GetParamBool("tls") {
		scheme = "https"
	}
	address := fmt.Sprintf("%s://%s", scheme, location.Host)

	segments := strings.SplitN(strings.Trim(location.Path, "/"), "/", 2)
	if len(segments) == 0 || segments[0] == "" {
		return nil, fmt.Errorf("%w: vault URI has no mount path", interfaces.ErrInvalidStoreURI)
	}
	mountPath := segments[0]
	dataPath := "contracts"
	if len(segments) > 1 && segments[1] != "" {
		dataPath = segments[1]
	}

	return NewVaultStore(address, mountPath, dataPath, location.Auth, f.log)
}
