// Package models defines the furball data types: document references,
// user profiles, artwork metadata, blobs, and the node-side document record.
package models
