package documents

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrNotController   = errors.New("caller does not control the document")
	ErrVersionConflict = errors.New("document version conflict")
	ErrEmptyContent    = errors.New("document content is empty")
	ErrDuplicate       = errors.New("document already exists")
)
