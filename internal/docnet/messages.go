package docnet

type AuthenticateRequest struct {
	DID       string `cbor:"did"`
	IssuedAt  int64  `cbor:"issued_at"`
	Signature []byte `cbor:"signature"`
}

type AuthenticateResponse struct {
	AccessToken string `cbor:"access_token"`
	ExpiresAt   int64  `cbor:"expires_at"`
}

type CreateDocumentRequest struct {
	Content []byte `cbor:"content"`
}

type CreateDocumentResponse struct {
	ID string `cbor:"id"`
}

type LoadDocumentRequest struct {
	ID string `cbor:"id"`
}

type LoadDocumentResponse struct {
	ID         string `cbor:"id"`
	Controller string `cbor:"controller"`
	Version    int64  `cbor:"version"`
	Content    []byte `cbor:"content"`
}

type UpdateDocumentRequest struct {
	ID      string `cbor:"id"`
	Content []byte `cbor:"content"`
}

type UpdateDocumentResponse struct {
	Version int64 `cbor:"version"`
}
