package models

// ArtMetadata describes one artwork. It is written once and never updated.
type ArtMetadata struct {
	Title       string `cbor:"title"`
	Description string `cbor:"description,omitempty"`
	Artist      string `cbor:"artist,omitempty"`
	Image       DocID  `cbor:"image,omitempty"`
	// Stegod references the blob holding the steganographic payload.
	Stegod DocID `cbor:"stegod,omitempty"`
	// Original references the artwork this one was derived from, if any.
	Original DocID `cbor:"original,omitempty"`
}

// Blob is the content of a blob document. Image bytes and steganographic
// payloads share this representation.
type Blob struct {
	Data []byte `cbor:"data"`
}
