// Package client is the furball document store adapter.
//
// # Overview
//
// Store is the contract the profile, artwork and blob services program
// against: CreateDocument, LoadDocument and UpdateDocument over opaque CBOR
// content. GRPCClient implements it against a document node:
//
//  1. SetDIDProvider signs an authentication challenge with the caller's DID
//     key and keeps the returned session token.
//  2. An interceptor attaches the token to every document call and, when the
//     node reports it expired, re-authenticates and retries once.
//  3. gRPC status codes are mapped to the sentinel errors below.
//
// InitDatabase and RunMigrations bootstrap the local SQLite database that
// backs the identity cache.
//
// # Error Handling
//
// Callers match with errors.Is: ErrNetwork, ErrNotFound,
// ErrUninitializedSession, ErrUnauthorized.
package client
