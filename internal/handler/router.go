package handler

import (
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Dependencies are the collaborators the router wires into its handlers.
// Verifier may be nil, which leaves the endpoints open.
type Dependencies struct {
	Chat           ChatReplier
	Contact        ContactSubmitter
	Limiter        RequestLimiter
	LogStore       Pinger
	Verifier       TokenVerifier
	AllowedOrigins []string
	Logger         *log.Logger
}

// SetupRouter creates the chi router serving the chat and contact endpoints
// under their function paths and their /api aliases.
func SetupRouter(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", NewHealthHandler(deps.LogStore, deps.Logger).Check)

	guard := NewOriginGuard(deps.AllowedOrigins)
	chatHandler := NewChatHandler(deps.Chat, deps.Limiter, deps.Logger)
	contactHandler := NewContactHandler(deps.Contact, deps.Limiter, deps.Logger)

	r.Group(func(r chi.Router) {
		r.Use(guard.Handler)
		if deps.Verifier != nil {
			r.Use(NewAuthMiddleware(deps.Verifier, deps.Logger).Authenticate)
		}

		for _, path := range []string{"/functions/v1/chat-support", "/api/chat"} {
			r.Handle(path, chatHandler)
		}
		for _, path := range []string{"/functions/v1/send-contact-email", "/api/contact"} {
			r.Handle(path, contactHandler)
		}
	})

	return r
}
