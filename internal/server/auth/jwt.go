// Package auth issues and checks the node's session tokens and verifies the
// DID-signed challenge a client presents to obtain one.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/furball-art/furball/internal/did"
	"github.com/furball-art/furball/internal/docnet"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrStaleChallenge = errors.New("authentication timestamp outside allowed skew")
	ErrBadSignature   = errors.New("invalid did signature")
)

// Claims carries the authenticated DID in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for subject, valid for validityDuration
// from now. It returns the token and its expiry.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(validityDuration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// SubjectFromToken validates tokenString and returns its subject. Expired
// tokens yield docnet.ErrTokenExpired so callers can tell clients to renew.
func SubjectFromToken(tokenString string, secretKey []byte, now time.Time) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", docnet.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// VerifyChallenge checks that sig is id's signature over the authentication
// message for issuedAt and that issuedAt lies within skew of now.
func VerifyChallenge(id string, issuedAt int64, sig []byte, now time.Time, skew time.Duration) error {
	at := time.Unix(issuedAt, 0)
	if at.Before(now.Add(-skew)) || at.After(now.Add(skew)) {
		return ErrStaleChallenge
	}
	if err := did.Verify(id, docnet.AuthMessage(id, issuedAt), sig); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	return nil
}
