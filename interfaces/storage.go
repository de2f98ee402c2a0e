package interfaces

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrObjectNotFound is returned when a requested object does not exist in
	// the contract store.
	ErrObjectNotFound = errors.New("object not found")

	// ErrStoreUnavailable is returned when a contract store backend is not
	// accessible. This could be due to network issues, authentication
	// failures, or service outages.
	ErrStoreUnavailable = errors.New("contract store unavailable")

	// ErrInvalidStoreURI is returned when a store location URI is malformed or
	// uses an unsupported scheme. URIs follow the format
	// [scheme]://[auth@]host[:port][/path][?params].
	ErrInvalidStoreURI = errors.New("invalid contract store URI")
)

// StoreLocation represents a parsed contract store URI.
type StoreLocation struct {
	Raw    string     // Original URI
	Scheme string     // Protocol
	Host   string     // Hostname
	Path   string     // Resource path
	Query  url.Values // Query parameters
	Auth   string     // Authentication info
}

// NewStoreLocation parses and validates a contract store URI.
// Supported schemes: file, s3, ipfs, vault.
func NewStoreLocation(uri string) (StoreLocation, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return StoreLocation{}, fmt.Errorf("%w: %v", ErrInvalidStoreURI, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	switch scheme {
	case "file", "s3", "ipfs", "vault":
	default:
		return StoreLocation{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidStoreURI, parsed.Scheme)
	}

	var auth string
	if parsed.User != nil {
		auth = parsed.User.String()
	}

	return StoreLocation{
		Raw:    uri,
		Scheme: scheme,
		Host:   parsed.Host,
		Path:   parsed.Path,
		Query:  parsed.Query(),
		Auth:   auth,
	}, nil
}

// String returns the original URI string.
func (loc StoreLocation) String() string {
	return loc.Raw
}

// GetParam returns a query parameter value.
func (loc StoreLocation) GetParam(name string) string {
	return loc.Query.Get(name)
}

// GetParamBool returns a boolean query parameter value.
func (loc StoreLocation) GetParamBool(name string) bool {
	value := loc.Query.Get(name)
	return value == "true" || value == "1" || value == "yes"
}

// ContractStore provides named storage for contract templates and provisioning
// artifacts. Objects are addressed by name; what a name means is
// backend-specific (a relative path for files and S3, a KV entry for Vault, a
// CID for IPFS).
type ContractStore interface {
	// Fetch retrieves an object by name. Returns ErrObjectNotFound if the
	// backend is reachable but has no such object.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Store saves an object and returns the name under which it can later be
	// fetched. Most backends return the name unchanged; content-addressed
	// backends return the derived identifier.
	Store(ctx context.Context, name string, data []byte) (string, error)

	// Available checks if the backend is accessible.
	Available(ctx context.Context) bool

	// Name returns an identifier for logging.
	Name() string

	// LocationURI returns the URI identifying this backend.
	LocationURI() string
}

// ContractStoreFactory creates contract stores from location URIs.
type ContractStoreFactory interface {
	// StoreFor creates a backend from a parsed location.
	StoreFor(location StoreLocation) (ContractStore, error)

	// MultiStoreFor creates an aggregated store over several locations,
	// fetching from the first backend that has an object and storing to all.
	MultiStoreFor(locations []StoreLocation) (ContractStore, error)
}
