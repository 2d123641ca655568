package auth

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furball-art/furball/internal/did"
	"github.com/furball-art/furball/internal/docnet"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	subject := "did:key:z6MkExample"

	tok, exp, err := GenerateToken(subject, secret, time.Hour, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), exp)

	got, err := SubjectFromToken(tok, secret, testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	a, _, err := GenerateToken("s", []byte("k"), time.Hour, testNow)
	require.NoError(t, err)
	b, _, err := GenerateToken("s", []byte("k"), time.Hour, testNow)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSubjectFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, _, err := GenerateToken("u1", secret, time.Minute, testNow)
	require.NoError(t, err)

	_, err = SubjectFromToken(tok, secret, testNow.Add(2*time.Minute))
	assert.ErrorIs(t, err, docnet.ErrTokenExpired)
}

func TestSubjectFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := GenerateToken("u1", []byte("right"), time.Hour, testNow)
	require.NoError(t, err)

	_, err = SubjectFromToken(tok, []byte("wrong"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSubjectFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := SubjectFromToken("not-a-jwt", []byte("k"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSubjectFromToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = SubjectFromToken(tok, []byte("k"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSubjectFromToken_RequiresSubjectAndExpiry(t *testing.T) {
	t.Parallel()

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour))},
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = SubjectFromToken(noSubject, []byte("k"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = SubjectFromToken(noExpiry, []byte("k"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyChallenge(t *testing.T) {
	t.Parallel()

	p, err := did.NewProvider(bytes.Repeat([]byte{7}, did.SeedSize))
	require.NoError(t, err)
	other, err := did.NewProvider(bytes.Repeat([]byte{8}, did.SeedSize))
	require.NoError(t, err)

	issuedAt := testNow.Unix()
	sig := p.Sign(docnet.AuthMessage(p.DID(), issuedAt))
	skew := 2 * time.Minute

	require.NoError(t, VerifyChallenge(p.DID(), issuedAt, sig, testNow, skew))
	require.NoError(t, VerifyChallenge(p.DID(), issuedAt, sig, testNow.Add(skew), skew))

	assert.ErrorIs(t, VerifyChallenge(p.DID(), issuedAt, sig, testNow.Add(3*time.Minute), skew), ErrStaleChallenge)
	assert.ErrorIs(t, VerifyChallenge(p.DID(), issuedAt, sig, testNow.Add(-3*time.Minute), skew), ErrStaleChallenge)
	assert.ErrorIs(t, VerifyChallenge(other.DID(), issuedAt, sig, testNow, skew), ErrBadSignature)
	assert.ErrorIs(t, VerifyChallenge(p.DID(), issuedAt+1, sig, testNow, skew), ErrBadSignature)
	assert.ErrorIs(t, VerifyChallenge("did:key:nonsense", issuedAt, sig, testNow, skew), ErrBadSignature)
}
