package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/techq/techq-be/internal/model"
	"github.com/techq/techq-be/internal/service"
)

const maxChatBodyBytes = 5000

const (
	msgChatRateLimited   = "Too many requests. Please wait a moment before sending another message."
	msgChatBodyTooLarge  = "Message too long"
	msgMessageRequired   = "Message is required"
	msgMessageTooLong    = "Message too long. Please keep it under 1000 characters."
	msgInvalidHistory    = "Invalid conversation history"
	msgChatUnavailable   = "Sorry, I'm having trouble right now. Please try again in a moment."
	msgMethodNotAllowed  = "Method not allowed"
	msgInvalidJSONFormat = "Invalid JSON format"
)

// ChatReplier produces the assistant reply for a visitor message.
type ChatReplier interface {
	Reply(ctx context.Context, message string, history []model.ChatTurn) (string, error)
}

// RequestLimiter is the admission check shared by both endpoints.
type RequestLimiter interface {
	Allow(ctx context.Context, ip string, p service.Policy) bool
}

// ChatHandler relays a chat widget message to the completion API.
type ChatHandler struct {
	chat    ChatReplier
	limiter RequestLimiter
	logger  *log.Logger
}

func NewChatHandler(c ChatReplier, l RequestLimiter, logger *log.Logger) *ChatHandler {
	return &ChatHandler{
		chat:    c,
		limiter: l,
		logger:  logger,
	}
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	ip := ClientIP(r)

	body, err := readBody(r, maxChatBodyBytes)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			h.logger.Printf("Chat request too large for IP: %s, Request ID: %s", ip, requestID)
			respondWithError(w, http.StatusRequestEntityTooLarge, msgChatBodyTooLarge)
			return
		}
		respondWithError(w, http.StatusBadRequest, msgInvalidJSONFormat)
		return
	}

	if !h.limiter.Allow(r.Context(), ip, service.ChatPolicy) {
		h.logger.Printf("Chat rate limit exceeded for IP: %s, Request ID: %s", ip, requestID)
		respondWithError(w, http.StatusTooManyRequests, msgChatRateLimited)
		return
	}

	var req model.DTOChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, chatDecodeMessage(err))
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, chatValidationMessage(err))
		return
	}
	if historyIsNull(body) {
		respondWithError(w, http.StatusBadRequest, msgInvalidHistory)
		return
	}

	h.logger.Printf("Processing chat message - Request ID: %s, IP: %s, client: %s", requestID, ip, clientRole(r))

	reply, err := h.chat.Reply(r.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		h.logger.Printf("Error in chat-support - Request ID: %s: %v", requestID, err)
		respondWithError(w, http.StatusInternalServerError, msgChatUnavailable)
		return
	}

	h.logger.Printf("Chat response generated - Request ID: %s", requestID)
	respondWithJson(w, http.StatusOK, model.DTOChatResponse{Response: reply})
}

// chatDecodeMessage maps a JSON type mismatch on a known field to that
// field's validation message.
func chatDecodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case strings.HasPrefix(typeErr.Field, "conversationHistory"):
			return msgInvalidHistory
		case typeErr.Field == "message":
			return msgMessageRequired
		}
	}
	return msgInvalidJSONFormat
}

func chatValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return msgInvalidJSONFormat
	}

	e := validationErrors[0]
	if strings.Contains(e.Namespace(), "conversationHistory") {
		return msgInvalidHistory
	}
	if e.Tag() == "max" {
		return msgMessageTooLong
	}
	return msgMessageRequired
}

// historyIsNull reports an explicit "conversationHistory": null. Decoding
// alone cannot tell it apart from an omitted history.
func historyIsNull(body []byte) bool {
	var fields struct {
		ConversationHistory json.RawMessage `json:"conversationHistory"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	return string(fields.ConversationHistory) == "null"
}
