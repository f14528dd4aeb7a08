package app

import (
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSigningSecret(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	raw := []byte(strings.Repeat("k", 32))

	t.Run("std base64", func(t *testing.T) {
		t.Parallel()
		got, err := LoadSigningSecret(base64.StdEncoding.EncodeToString(raw), logger)
		require.NoError(t, err)
		require.Equal(t, raw, got)
	})

	t.Run("url base64 unpadded", func(t *testing.T) {
		t.Parallel()
		key := []byte{0xfb, 0xff, 0xfe}
		key = append(key, raw...)
		got, err := LoadSigningSecret(base64.RawURLEncoding.EncodeToString(key), logger)
		require.NoError(t, err)
		require.Equal(t, key, got)
	})

	t.Run("empty generates", func(t *testing.T) {
		t.Parallel()
		a, err := LoadSigningSecret("", logger)
		require.NoError(t, err)
		b, err := LoadSigningSecret("  ", logger)
		require.NoError(t, err)
		require.Len(t, a, 32)
		require.NotEqual(t, a, b)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, err := LoadSigningSecret(base64.StdEncoding.EncodeToString([]byte("short")), logger)
		require.ErrorContains(t, err, "at least 32 bytes")
	})

	t.Run("not base64", func(t *testing.T) {
		t.Parallel()
		_, err := LoadSigningSecret("!!!not base64!!!", logger)
		require.Error(t, err)
	})
}
