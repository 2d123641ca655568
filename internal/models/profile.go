package models

// UserProfile is the content of a user's single profile document.
// Links is always encoded, so nil and empty maps survive a round trip.
type UserProfile struct {
	Name      string            `cbor:"name,omitempty"`
	Bio       string            `cbor:"bio,omitempty"`
	Avatar    DocID             `cbor:"avatar,omitempty"`
	AccountID string            `cbor:"account_id,omitempty"`
	Links     map[string]string `cbor:"links"`
}
