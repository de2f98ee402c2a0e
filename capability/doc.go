// Package capability provides implementations of the wallet capability port.
//
// DevWallet is an in-process implementation backed by the
// standard wallet directory layout. It reproduces the native library's
// observable contract (sentinel returns, response fragment quirks, the hard
// abort on bad key sizes) without any real cryptography, which makes it
// suitable for development, integration tests and CI. Production deployments
// bind interfaces.WalletCapability to the native transaction-processing
// library instead.
package capability
