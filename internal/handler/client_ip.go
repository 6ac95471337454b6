package handler

import (
	"net/http"
	"strings"
)

const unknownClientIP = "unknown"

// ClientIP identifies the caller for rate limiting: the first X-Forwarded-For
// hop, then X-Real-IP, then "unknown". RemoteAddr is the proxy in front of us
// and is never used.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return unknownClientIP
}
