package handler

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Pinger reports whether the request log store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  Pinger
	logger *log.Logger
}

func NewHealthHandler(store Pinger, logger *log.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Printf("Health check failed: request log store error: %v", err)

		respondWithError(w, http.StatusServiceUnavailable, "Request log store unavailable")
		return
	}

	data := map[string]string{
		"status":  "ok",
		"message": "Service is healthy and the request log store is reachable",
	}
	respondWithJson(w, http.StatusOK, data)
}
