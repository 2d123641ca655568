// Package cli provides the interactive furball shell.
//
// It wires configuration, the local SQLite identity cache, the wallet
// session, a document node connection and the profile, artwork and blob
// services, then runs a REPL until the user exits.
//
// Typical flow: "login <account>" passes the sign-in gate, after which the
// profile and art commands are available. The document session (DID
// authentication with the node) is established on first use.
package cli
