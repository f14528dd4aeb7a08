package httpx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller's address. Forwarding headers are only
// honoured when trustProxy is set, since any client can send them.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// X-Forwarded-For is a comma-separated list, client first.
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
