package models

import (
	"errors"
	"time"

	"github.com/furball-art/furball/internal/cidutil"
)

// MaxDocIDLen bounds user-supplied document references.
const MaxDocIDLen = 64

var ErrInvalidDocID = errors.New("invalid document id")

// DocID names a document on the document network. It is the string form of
// the CID of the document's genesis record.
type DocID string

func (id DocID) String() string { return string(id) }

// IsZero reports whether id is empty.
func (id DocID) IsZero() bool { return id == "" }

// Validate checks user-supplied ids before they reach the network.
func (id DocID) Validate() error {
	if id == "" || len(id) > MaxDocIDLen {
		return ErrInvalidDocID
	}
	if _, err := cidutil.Parse(string(id)); err != nil {
		return ErrInvalidDocID
	}
	return nil
}

// Document is the node's record of a document. Content lives in the
// content-addressed store under ContentCID.
type Document struct {
	ID         DocID
	Controller string
	Version    int64
	ContentCID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Genesis is the record hashed into a document id. Unique makes two
// documents with equal content and controller distinct.
type Genesis struct {
	Controller string `cbor:"controller"`
	Content    string `cbor:"content"`
	Unique     string `cbor:"unique"`
}
