package jwtx

import "errors"

// Verifier validates a JWT and gives you back the claims if it's legit.
//
// Verify checks the signature and the structural claims only. Expiry is left
// to the caller so that revoked-but-unexpired and expired tokens can be told
// apart internally without a second parse.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Adapter a Verifier wrapper for HS256.
type HS256Adapter struct{ *HS256Verifier }

func (a HS256Adapter) Verify(token string) (Claims, error) {
	c, err := a.HS256Verifier.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	return *c, nil
}

// NewCommonHS256 returns a Verifier using the HS256 implementation wrapped
// in the common interface.
func NewCommonHS256(secret []byte, opts VerifyOptions) Verifier {
	return HS256Adapter{NewVerifierHS256(secret, opts)}
}
