package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestHS256SignAndVerify(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	now := time.Now().UTC()
	token, err := signer.Sign(jwtx.NewAccessClaims("alice@example.com", "bank-api", time.Hour, now))
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3, "compact JWT has three parts")

	verifier := jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{Issuer: "bank-api"})
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
}

func TestHS256VerifyDoesNotCheckExpiry(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	token, err := signer.Sign(jwtx.NewAccessClaims("alice@example.com", "", time.Hour, past))
	require.NoError(t, err)

	claims, err := jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{}).Verify(token)
	require.NoError(t, err)
	require.ErrorIs(t, claims.ValidateExpiry(time.Now()), jwtx.ErrExpired)
}

func TestHS256VerifyRejects(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims("alice@example.com", "bank-api", time.Hour, time.Now()))
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := []byte("ffffffffffffffffffffffffffffffff")
		_, err := jwtx.NewCommonHS256(other, jwtx.VerifyOptions{}).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "AA"
		_, err := jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{}).Verify(strings.Join(parts, "."))
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{}).Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		_, err := jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{Issuer: "other"}).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("alg none", func(t *testing.T) {
		c := jwtx.NewAccessClaims("alice@example.com", "", time.Hour, time.Now())
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{}).Verify(unsigned)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := jwtx.NewAccessClaims("", "", time.Hour, time.Now())
		tok, err := signer.Sign(c)
		require.NoError(t, err)

		_, err = jwtx.NewCommonHS256(testSecret, jwtx.VerifyOptions{}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}

func TestNewSignerHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.Error(t, err)
}
