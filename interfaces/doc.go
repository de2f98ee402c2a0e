// Package interfaces defines the contracts between the components of the
// wallet provisioning system.
//
// # Core Abstractions
//
// WalletCapability is the port to the opaque native transaction-processing
// library (pseudonym, account, server and asset management, contract signing,
// server registration). The native library signals failure through sentinel
// return values rather than structured errors; the port preserves that raw
// convention and documents it per method, so that translation into typed Go
// errors can happen exactly once at the boundary (in the wallet package).
//
// ContractStore abstracts where operators keep contract templates and where
// provisioning artifacts are archived, with file, S3, IPFS and Vault backends
// selected by URI scheme.
//
// # Error Taxonomy
//
// Failures fall into four classes, all of which propagate to the caller
// uncaught (provisioning is a single-shot, interactive procedure with no local
// recovery):
//
//   - SentinelReturnError: a capability call returned its documented failure
//     sentinel; carries the raw value.
//   - InvariantError: an internal assertion failed; a programming or
//     environment defect.
//   - ParseError: malformed XML or document structure.
//   - Filesystem failures: wrapped os errors from provisioning file moves.
package interfaces
