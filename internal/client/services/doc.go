// Package services holds the furball client's document services: profile
// sync, artwork metadata and blob upload. Each service is built once per
// session over a client.Store and shares nothing else.
package services
