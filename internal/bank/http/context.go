package http

import (
	"context"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
)

type ctxKey int

const identityKey ctxKey = iota

// WithIdentity attaches the caller's identity to ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity set by the authentication gate.
// ok is false when the gate has not run.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}
