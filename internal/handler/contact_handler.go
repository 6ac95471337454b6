package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/techq/techq-be/internal/model"
	"github.com/techq/techq-be/internal/service"
)

const maxContactBodyBytes = 10000

const (
	msgContactRateLimited  = "Too many requests. Please try again later."
	msgContactBodyTooLarge = "Request too large"
	// shared by malformed payloads and bot submissions
	msgInvalidSubmission = "Invalid form submission"
	msgEmailFailed       = "Failed to send email. Please try again later."
	msgEmailsSent        = "Emails sent successfully"
)

// ContactSubmitter delivers a validated contact form submission.
type ContactSubmitter interface {
	Submit(ctx context.Context, sub model.ContactSubmission) (*model.ContactResult, error)
}

type ContactHandler struct {
	contact ContactSubmitter
	limiter RequestLimiter
	logger  *log.Logger
}

func NewContactHandler(c ContactSubmitter, l RequestLimiter, logger *log.Logger) *ContactHandler {
	return &ContactHandler{
		contact: c,
		limiter: l,
		logger:  logger,
	}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		respondWithContactError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	ip := ClientIP(r)

	body, err := readBody(r, maxContactBodyBytes)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			h.logger.Printf("Contact request too large for IP: %s, Request ID: %s", ip, requestID)
			respondWithContactError(w, http.StatusRequestEntityTooLarge, msgContactBodyTooLarge)
			return
		}
		respondWithContactError(w, http.StatusBadRequest, msgInvalidSubmission)
		return
	}

	if !h.limiter.Allow(r.Context(), ip, service.ContactPolicy) {
		h.logger.Printf("Contact rate limit exceeded for IP: %s, Request ID: %s", ip, requestID)
		respondWithContactError(w, http.StatusTooManyRequests, msgContactRateLimited)
		return
	}

	var sub model.ContactSubmission
	if err := json.Unmarshal(body, &sub); err != nil {
		respondWithContactError(w, http.StatusBadRequest, msgInvalidSubmission)
		return
	}

	if sub.Honeypot != "" {
		h.logger.Printf("Honeypot triggered for IP: %s, Request ID: %s", ip, requestID)
		respondWithContactError(w, http.StatusBadRequest, msgInvalidSubmission)
		return
	}

	sub.TrimSpace()
	if err := validate.Struct(&sub); err != nil {
		respondWithContactError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	h.logger.Printf("Processing contact submission - Request ID: %s, IP: %s, client: %s", requestID, ip, clientRole(r))

	result, err := h.contact.Submit(r.Context(), sub)
	if err != nil {
		h.logger.Printf("Error in send-contact-email - Request ID: %s: %v", requestID, err)
		respondWithContactError(w, http.StatusInternalServerError, msgEmailFailed)
		return
	}

	h.logger.Printf("Contact emails sent - Request ID: %s, business: %s, customer: %s",
		requestID, result.BusinessEmailID, result.CustomerEmailID)
	respondWithJson(w, http.StatusOK, model.DTOContactResponse{
		Success:         true,
		Message:         msgEmailsSent,
		BusinessEmailID: result.BusinessEmailID,
		CustomerEmailID: result.CustomerEmailID,
	})
}
