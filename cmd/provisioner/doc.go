// Command provisioner runs the one-time client-to-server role transition for
// a wallet installation.
//
// It creates a server nym, signs the server contract template, extracts the
// cached signing key, moves the credentials subtree into server_data/ and
// deletes client_data/, then prints the four bootstrap artifacts (contract
// id, nym id, cached key, decoded signed contract) for manual transcription
// into the server configuration. The transcript can optionally be archived to
// a contract store.
//
// The procedure is destructive and single-shot: it permanently removes the
// client-side wallet state and does not roll back on failure.
package main
