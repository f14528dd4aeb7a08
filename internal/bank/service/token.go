package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/bankgate/pkg/cryptox"
	"github.com/aussiebroadwan/bankgate/pkg/jwtx"
	"github.com/aussiebroadwan/bankgate/pkg/revocation"
	"github.com/aussiebroadwan/bankgate/pkg/slogx"
	"golang.org/x/time/rate"
)

// DefaultRevocationPrefix namespaces revocation records in a shared store.
const DefaultRevocationPrefix = "jwt:blacklist:"

const bearerPrefix = "Bearer "

// TokenConfig configures a TokenService.
type TokenConfig struct {
	Secret           []byte
	Issuer           string
	TTL              time.Duration
	RevocationPrefix string

	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// TokenService issues HS256 access tokens and tracks revoked ones.
//
// A token is valid only while its signature checks out, it has not expired
// and it is absent from the revocation store. Validation fails closed: if
// the revocation store cannot be reached the token is treated as invalid.
type TokenService struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier
	revoked  revocation.Store

	issuer string
	ttl    time.Duration
	prefix string
	nowFn  func() time.Time

	// storeWarn keeps an outage of the revocation store from flooding logs.
	storeWarn rate.Sometimes
}

// NewTokenService validates cfg and builds the service.
func NewTokenService(cfg TokenConfig, revoked revocation.Store) (*TokenService, error) {
	if revoked == nil {
		return nil, errors.New("token service: revocation store is required")
	}

	signer, err := jwtx.NewSignerHS256(cfg.Secret)
	if err != nil {
		return nil, err
	}

	if cfg.TTL <= 0 {
		cfg.TTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.RevocationPrefix == "" {
		cfg.RevocationPrefix = DefaultRevocationPrefix
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &TokenService{
		signer:    signer,
		verifier:  jwtx.NewCommonHS256(cfg.Secret, jwtx.VerifyOptions{Issuer: cfg.Issuer}),
		revoked:   revoked,
		issuer:    cfg.Issuer,
		ttl:       cfg.TTL,
		prefix:    cfg.RevocationPrefix,
		nowFn:     cfg.Now,
		storeWarn: rate.Sometimes{Interval: 30 * time.Second},
	}, nil
}

// TTL is the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue signs a token for subject and returns it with its expiry.
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	if strings.TrimSpace(subject) == "" {
		return "", time.Time{}, errors.New("token service: empty subject")
	}

	claims := jwtx.NewAccessClaims(subject, s.issuer, s.ttl, s.nowFn())
	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token service: sign: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// ExtractBearer pulls the token out of an Authorization header value. A
// missing header or a different scheme is not an error, the request is
// simply unauthenticated.
func (s *TokenService) ExtractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// Subject returns the subject of a well-formed, unexpired token. It does not
// consult the revocation store; Validate does.
func (s *TokenService) Subject(token string) (string, error) {
	claims, err := s.claims(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Validate reports whether token is currently valid for subject. It never
// returns an error: every failure, including an unreachable revocation
// store, is simply false.
func (s *TokenService) Validate(ctx context.Context, token, subject string) bool {
	log := slogx.FromContext(ctx)

	revoked, err := s.isRevoked(ctx, token)
	if err != nil {
		s.storeWarn.Do(func() {
			log.Warn("revocation store unavailable, rejecting token", "err", err)
		})
		return false
	}
	if revoked {
		log.Debug("token rejected", "reason", "revoked")
		return false
	}

	claims, err := s.claims(token)
	if err != nil {
		log.Debug("token rejected", "reason", err)
		return false
	}

	if claims.Subject != subject {
		log.Debug("token rejected", "reason", "subject mismatch")
		return false
	}
	return true
}

// Revoke records token as revoked for the rest of its lifetime. Expired
// tokens are left alone since they are already dead.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return ErrInvalidToken
	}

	remaining := claims.Remaining(s.nowFn())
	if remaining <= 0 {
		return nil
	}

	if err := s.revoked.Put(ctx, s.revocationKey(token), remaining); err != nil {
		slogx.FromContext(ctx).Error("failed to record token revocation", "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Ping checks the revocation store.
func (s *TokenService) Ping(ctx context.Context) error {
	return s.revoked.Ping(ctx)
}

// claims verifies signature, issuer and expiry.
func (s *TokenService) claims(token string) (jwtx.Claims, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := claims.ValidateExpiry(s.nowFn()); err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *TokenService) isRevoked(ctx context.Context, token string) (bool, error) {
	return s.revoked.Exists(ctx, s.revocationKey(token))
}

// revocationKey fingerprints the token so the store never holds a usable
// credential.
func (s *TokenService) revocationKey(token string) string {
	return s.prefix + cryptox.FingerprintToken(token)
}
