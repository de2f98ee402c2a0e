// Package storage provides named object storage for contract templates and
// provisioning artifacts, with pluggable backends.
//
// Operators keep server and asset contract templates wherever their
// deployment tooling lives; this package lets the CLIs fetch templates from,
// and archive provisioning transcripts to, any of:
//
//   - file:///var/lib/wallet/contracts/ - local filesystem
//   - s3://bucket/prefix/?region=us-west-2 - S3-compatible object storage
//   - ipfs://host:5001/ - IPFS (content-addressed: object names are CIDs)
//   - vault://vault.example.com:8200/secret/wallet - Vault KV v2
//
// Stores are selected by URI scheme through the Factory. A MultiStore
// aggregates several backends, fetching from the first that has an object and
// storing to all available ones.
//
// Unlike content-addressed storage, objects here are addressed by name: a
// relative path for file and S3 backends, a KV entry for Vault, and a CID for
// IPFS (where Store returns the derived CID as the retrieval name).
package storage
