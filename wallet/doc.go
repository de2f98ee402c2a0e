// Package wallet provides the client-side facade over the native wallet
// capability: read-only queries of locally cached identities, accounts,
// servers and asset types, plus contract issuance operations.
//
// The Client is the single place where the native library's sentinel return
// values (empty string, integer 1) are translated into typed errors. Code
// above this package never inspects raw sentinels. See the policy table on
// interfaces.WalletCapability for the per-method conventions, including the
// two ambiguities (nym name, account enumeration) that are preserved rather
// than resolved.
//
// All operations are synchronous and blocking. The capability is assumed
// non-reentrant; nothing in this package takes locks, and concurrent use of a
// Client is not supported.
package wallet
