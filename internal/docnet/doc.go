// Package docnet defines the wire contract between a furball client and a
// document node: request and response messages, a CBOR gRPC codec, and the
// DocumentService descriptor with its client stub and server interface.
//
// Messages are plain Go structs. They travel with the "cbor" content subtype,
// so no protobuf code generation is involved. The standard gRPC health
// service keeps using protobuf on the same connection.
package docnet
