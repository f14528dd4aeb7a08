package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretSize is the smallest HMAC secret we accept. HS256 wants at least
// as many key bytes as the hash output.
const MinSecretSize = 32

// HS256Signer implements the Signer interface using HMAC-SHA256.
type HS256Signer struct {
	secret []byte
	alg    string
}

func newHS256Signer(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{
		secret: append([]byte(nil), secret...),
		alg:    jwt.SigningMethodHS256.Alg(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed compact JWT.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check to make sure the secret is usable.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretSize {
		return fmt.Errorf("jwtx: HS256 secret must be at least %d bytes, got %d", MinSecretSize, len(s.secret))
	}
	return nil
}

// HS256Verifier validates JWTs signed using HS256.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

// NewVerifierHS256 creates a verifier for tokens signed with secret.
func NewVerifierHS256(secret []byte, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{secret: append([]byte(nil), secret...), opts: opts}
}

// Verify checks the signature and issuer of tokenStr and returns its claims.
// Expiry is not checked here, see Verifier.
func (v *HS256Verifier) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaim
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidClaim
	}
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return nil, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidSig, err)
	default:
		return fmt.Errorf("jwtx: parse or verify: %w", err)
	}
}
