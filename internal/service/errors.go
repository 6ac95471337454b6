package service

import "errors"

var (
	// Upstream errors. Details are logged, never returned to the caller.
	ErrUpstreamUnavailable     = errors.New("upstream service unavailable")
	ErrInvalidUpstreamResponse = errors.New("invalid upstream response")
	ErrEmailDelivery           = errors.New("email delivery failed")

	// Client token errors
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)
