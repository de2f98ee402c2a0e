package interfaces

import (
	"errors"
	"fmt"
)

// NymIDLength is the length of a pseudonym identifier: the unpadded base64
// form of a 32-byte one-way hash of the nym's source material.
const NymIDLength = 43

// NymID identifies a pseudonym in the local wallet. Nym ids are created by the
// capability layer, never mutated locally, and destroyed only by external
// wallet operations.
type NymID string

// NewNymID validates and wraps a raw nym id string.
func NewNymID(raw string) (NymID, error) {
	if len(raw) != NymIDLength {
		return "", fmt.Errorf("invalid nym id length %d: must be %d characters", len(raw), NymIDLength)
	}
	return NymID(raw), nil
}

// String returns the raw id string.
func (id NymID) String() string {
	return string(id)
}

// Validate checks that the id has the expected shape.
func (id NymID) Validate() error {
	if len(id) != NymIDLength {
		return errors.New("invalid nym id")
	}
	return nil
}

// ServerDescriptor is a read-only (id, name) pair describing a transaction
// server known to the local wallet, sourced from the capability layer.
type ServerDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AssetDescriptor is a read-only (id, name) pair describing an asset type
// known to the local wallet.
type AssetDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Contract is a signed textual contract plus its derived identifier. Contracts
// are created once and immutable; they are passed by value between
// provisioning steps.
type Contract struct {
	ID   string
	Body string
}

// SupportedKeyBits lists the RSA key sizes the native library accepts for nym
// creation. Anything else is a hard abort in the library, so callers must
// treat membership here as a precondition rather than a failure mode.
var SupportedKeyBits = []int{1024, 2048, 4096, 8192}

// DefaultKeyBits is the key size used when the caller does not care.
const DefaultKeyBits = 1024

// KeyBitsSupported reports whether the native library accepts the key size.
func KeyBitsSupported(bits int) bool {
	for _, b := range SupportedKeyBits {
		if b == bits {
			return true
		}
	}
	return false
}
