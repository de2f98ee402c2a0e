// Package provision implements the one-time transition of a wallet
// installation from client role to server role.
//
// The workflow creates a server nym, signs a server contract from a template,
// extracts the wallet's cached signing key, moves the credentials subtree
// from client_data/ to server_data/ and deletes the rest of the client-side
// state, then emits the bootstrap artifacts for manual transcription into the
// server configuration. See Workflow for ordering and failure semantics.
//
// The package also owns the wallet directory layout (Layout) shared by the
// workflow, the development capability and the CLIs.
package provision
