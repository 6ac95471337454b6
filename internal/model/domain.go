package model

import "time"

// Endpoint is the logical name a request log entry is recorded under.
type Endpoint string

const (
	EndpointChatSupport      Endpoint = "chat-support"
	EndpointSendContactEmail Endpoint = "send-contact-email"
)

// RequestLogEntry is one row of the append-only api_request_log table.
type RequestLogEntry struct {
	IPAddress string    `json:"ip_address"`
	Endpoint  Endpoint  `json:"endpoint"`
	CreatedAt time.Time `json:"created_at"`
}

// OutboundEmail is a rendered message ready for the mail API.
type OutboundEmail struct {
	From    string
	To      []string
	Subject string
	HTML    string
}
