package docnet

import (
	"errors"
	"strconv"
)

// AccessTokenHeaderName is the metadata key carrying the session token.
const AccessTokenHeaderName = "access_token"

// ErrTokenExpired is sent as the Unauthenticated status message when a
// session token has expired. Clients re-authenticate when they see it.
var ErrTokenExpired = errors.New("token expired")

const authDomain = "furball-auth-v1"

// AuthMessage is the byte string a client signs with its DID key.
func AuthMessage(did string, issuedAt int64) []byte {
	return []byte(authDomain + "\n" + did + "\n" + strconv.FormatInt(issuedAt, 10))
}
