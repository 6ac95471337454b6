package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/techq/techq-be/internal/model"
	"github.com/techq/techq-be/internal/service"
)

type contextKey string

const clientContextKey = contextKey("client")

// TokenVerifier validates a client bearer token.
type TokenVerifier interface {
	Verify(tokenString string) (*model.ClientClaims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *log.Logger
}

func NewAuthMiddleware(v TokenVerifier, l *log.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: v,
		logger:   l,
	}
}

// Authenticate requires a valid client token on POST requests. Other methods
// pass through so the handler can answer them.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := m.verifier.Verify(headerParts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				respondWithError(w, http.StatusUnauthorized, "Token has expired")
			} else {
				m.logger.Printf("Rejected client token from %s: %v", ClientIP(r), err)
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), clientContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientFromContext returns the claims stored by Authenticate.
func GetClientFromContext(ctx context.Context) (*model.ClientClaims, bool) {
	claims, ok := ctx.Value(clientContextKey).(*model.ClientClaims)
	return claims, ok
}

// clientRole is the token role for log lines, or "-" when no token was checked.
func clientRole(r *http.Request) string {
	if claims, ok := GetClientFromContext(r.Context()); ok && claims.Role != "" {
		return claims.Role
	}
	return "-"
}
