package app

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/bankgate/pkg/cryptox"
	"github.com/aussiebroadwan/bankgate/pkg/jwtx"
)

// LoadSigningSecret decodes the base64 HMAC secret. With no secret
// configured a random one is generated; tokens then die with the process.
func LoadSigningSecret(encoded string, logger *slog.Logger) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		secret, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return nil, err
		}
		logger.Warn("JWT_SECRET_KEY not set, using an ephemeral signing secret; tokens will not survive a restart")
		return secret, nil
	}

	secret, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Accept URL-safe keys too, padded or not.
		secret, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return nil, fmt.Errorf("JWT_SECRET_KEY is not valid base64: %w", err)
		}
	}

	if len(secret) < jwtx.MinSecretSize {
		return nil, fmt.Errorf("JWT_SECRET_KEY must decode to at least %d bytes, got %d", jwtx.MinSecretSize, len(secret))
	}
	return secret, nil
}
