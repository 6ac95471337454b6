package handler

import (
	"net/http"

	"github.com/go-chi/cors"
)

const (
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "POST, OPTIONS"

	// disallowedOrigin is sent when the caller's origin is not on the allow-list.
	disallowedOrigin = "null"
)

// OriginGuard attaches CORS headers to every response of the public endpoints
// and answers preflight requests itself. Origin matching is delegated to
// go-chi/cors, so allow-list entries may use its wildcard syntax.
type OriginGuard struct {
	matcher *cors.Cors
}

func NewOriginGuard(allowedOrigins []string) *OriginGuard {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead,
		},
	}
	if len(allowedOrigins) == 0 {
		// an empty list means no origin, not every origin
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	return &OriginGuard{matcher: cors.New(opts)}
}

// Handler is the middleware form of the guard.
func (g *OriginGuard) Handler(next http.Handler) http.Handler {
	actual := g.matcher.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.setHeaders(w.Header())
		next.ServeHTTP(w, r)
	}))

	preflight := g.matcher.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.setHeaders(w.Header())
		w.WriteHeader(http.StatusNoContent)
	}))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			actual.ServeHTTP(w, r)
			return
		}
		// Run the matcher as if this were the POST being negotiated so it
		// only resolves the origin. The answer never depends on it.
		probe := r.Clone(r.Context())
		probe.Method = http.MethodPost
		probe.Header.Del("Access-Control-Request-Method")
		preflight.ServeHTTP(w, probe)
	})
}

// setHeaders completes the header set once the matcher has run.
func (g *OriginGuard) setHeaders(h http.Header) {
	if h.Get("Access-Control-Allow-Origin") == "" {
		h.Set("Access-Control-Allow-Origin", disallowedOrigin)
	}
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
}
