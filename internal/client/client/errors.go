package client

import "errors"

var (
	// ErrNetwork covers every transport or remote failure that is not a
	// missing document or a rejected session.
	ErrNetwork = errors.New("document network error")
	// ErrNotFound means the document id does not resolve.
	ErrNotFound = errors.New("document not found")
	// ErrUninitializedSession is returned by document calls made before
	// SetDIDProvider succeeded.
	ErrUninitializedSession = errors.New("document session not initialized")
	// ErrUnauthorized means the node rejected the session or the caller does
	// not control the document.
	ErrUnauthorized = errors.New("unauthorized")
)
