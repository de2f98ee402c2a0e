package interfaces

// WalletCapability is the port to the native transaction-processing library.
// Implementations wrap whatever native wallet library is available; the rest of
// the system only ever talks to this interface. The capability is not
// reentrant: it is process-wide singleton state, initialized once via Init and
// torn down once via Cleanup, and no concurrent invocations are supported.
//
// The port deliberately speaks the native library's raw sentinel conventions
// instead of Go errors. Translation into typed errors happens exactly once, in
// the wallet package, so no other code re-inspects raw sentinels. The
// per-method failure signaling is:
//
//	CreateNym             empty string = failure; invalid key size crashes the process
//	NymID                 empty string = failure (a nym id is never empty)
//	NymName               empty string = failure OR legitimately unnamed (ambiguous, see below)
//	AccountID             empty string = ambiguous, tolerated (see below)
//	ServerID, AssetTypeID empty string = failure, but historically unchecked
//	CreateServerContract  empty string = invariant violation
//	CreateAssetContract   empty string = invariant violation
//	SignedContract        empty string = failure
//	CreateAssetAccount    empty string = failure; success is a response fragment
//	                      with a stray leading '@' marker ("<@createAccount ...")
//	IssueAssetType        empty string = failure
//	RegisterNym           empty string = failure; on success the message must
//	                      additionally pass MessageSuccess
//	CheckServerID         integer sentinel, 1 = success
//	MessageSuccess        integer sentinel, 1 = success
//	AddServerContract     integer sentinel, 1 = success
//	Decode                empty string = failure
//
// Two ambiguities are documented properties of the native library and are
// preserved rather than resolved here:
//
//   - NymName returns an empty string both for "nym not found" and for a nym
//     that genuinely has no name. Callers cannot tell the two apart.
//   - AccountID may return empty entries during enumeration. Unlike nym
//     enumeration this is tolerated downstream, which may be a latent defect in
//     the native library's contract; we keep the asymmetry as documented.
type WalletCapability interface {
	// Init brings the native library into a working state and loads the local
	// wallet. Must be called exactly once per process, before any other method.
	Init() error

	// Cleanup tears down the native library. Must be called exactly once, after
	// which the capability is unusable.
	Cleanup() error

	// CreateNym generates a new pseudonym in the local wallet and returns its
	// id. Precondition: keyBits must be a key size supported by the native
	// library (1024, 2048, 4096 or 8192); an unsupported size is a hard abort
	// in the library, not a sentinel return.
	CreateNym(keyBits int, nymIDSource, altLocation string) string

	// Wallet enumeration. Counts are authoritative; ids are fetched by index in
	// the capability's internal enumeration order (stable per call, unsorted).
	NymCount() int
	NymID(index int) string
	NymName(nymID string) string
	AccountCount() int
	AccountID(index int) string
	ServerCount() int
	ServerID(index int) string
	ServerName(serverID string) string
	AssetTypeCount() int
	AssetTypeID(index int) string
	AssetTypeName(assetTypeID string) string

	// CreateServerContract signs a server contract with the given nym and
	// returns the derived contract id.
	CreateServerContract(nymID, contract string) string

	// CreateAssetContract signs an asset contract with the given nym and
	// returns the derived asset type id.
	CreateAssetContract(nymID, contract string) string

	// SignedContract retrieves the signed form of a contract from the wallet.
	SignedContract(serverID, nymID, assetTypeID string) string

	// CreateAssetAccount creates an asset account and returns the server's
	// response fragment (see the marker note in the policy table above).
	CreateAssetAccount(serverID, nymID, assetTypeID string) string

	// IssueAssetType dispatches issuance of a signed asset contract and returns
	// the server's response message.
	IssueAssetType(serverID, nymID, signedContract string) string

	// RegisterNym registers a nym on a server and returns the response message.
	RegisterNym(serverID, nymID string) string

	// CheckServerID pings a server, verifying it is reachable and the nym is
	// known to it.
	CheckServerID(serverID, nymID string) int

	// CheckUser requests the public key of another nym from a server.
	CheckUser(serverID, nymID, targetNymID string) string

	// MessageSuccess inspects a server response message for success.
	MessageSuccess(message string) int

	// AddServerContract registers a signed server contract in the local wallet.
	AddServerContract(contract string) int

	// Decode decodes an armored payload into its plain text form.
	Decode(data string) string
}
