package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the caller's address for rate limiting, preferring the
// first X-Forwarded-For entry when the service sits behind a proxy.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
