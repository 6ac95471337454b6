package model

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one entry of the conversation history sent by the widget.
type ChatTurn struct {
	Role    string `json:"role" validate:"oneof=user assistant"`
	Content string `json:"content"`
}

type DTOChatRequest struct {
	Message             string     `json:"message" validate:"notblank,max=1000"`
	ConversationHistory []ChatTurn `json:"conversationHistory" validate:"max=20,dive"`
}

type DTOChatResponse struct {
	Response string `json:"response"`
}

// ContactSubmission is the contact form payload. It is never persisted.
type ContactSubmission struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,max=100,basicemail"`
	Phone     string `json:"phone" validate:"required,max=20,phone"`
	Company   string `json:"company" validate:"required,max=100"`
	Service   string `json:"service" validate:"required,max=100"`
	Message   string `json:"message" validate:"required,max=2000"`
	Honeypot  string `json:"honeypot,omitempty"`
}

// TrimSpace trims surrounding whitespace from every form field.
func (s *ContactSubmission) TrimSpace() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Company = strings.TrimSpace(s.Company)
	s.Service = strings.TrimSpace(s.Service)
	s.Message = strings.TrimSpace(s.Message)
}

type DTOContactResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	BusinessEmailID string `json:"businessEmailId,omitempty"`
	CustomerEmailID string `json:"customerEmailId,omitempty"`
	Error           string `json:"error,omitempty"`
}

// ContactResult carries the ids the mail API assigned to both messages.
type ContactResult struct {
	BusinessEmailID string
	CustomerEmailID string
}

// ClientClaims are the claims carried by a site client token.
type ClientClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
