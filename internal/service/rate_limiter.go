package service

import (
	"context"
	"log"
	"time"

	"github.com/techq/techq-be/internal/model"
	"github.com/techq/techq-be/internal/repository"
)

// Policy is the admission limit for one endpoint.
type Policy struct {
	Endpoint  model.Endpoint
	PerMinute int
	PerHour   int
}

var (
	ChatPolicy    = Policy{Endpoint: model.EndpointChatSupport, PerMinute: 10, PerHour: 100}
	ContactPolicy = Policy{Endpoint: model.EndpointSendContactEmail, PerMinute: 5, PerHour: 50}
)

// RateLimiter admits requests by counting recent log rows per (ip, endpoint)
// in a trailing minute and a trailing hour.
//
// The count and the insert are separate statements, so concurrent requests can
// both be admitted at the edge of a window. Storage errors admit the request.
type RateLimiter struct {
	repo   repository.IRequestLogRepository
	logger *log.Logger
	now    func() time.Time
}

func NewRateLimiter(repo repository.IRequestLogRepository, logger *log.Logger) *RateLimiter {
	return &RateLimiter{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Allow reports whether the request is within p's limits and, when it is,
// records it.
func (l *RateLimiter) Allow(ctx context.Context, ip string, p Policy) bool {
	now := l.now()

	minuteCount, err := l.repo.CountSince(ctx, ip, p.Endpoint, now.Add(-time.Minute))
	if err != nil {
		l.logger.Printf("Rate limiting error (minute count) for %s/%s: %v", p.Endpoint, ip, err)
		return true
	}
	if minuteCount >= p.PerMinute {
		return false
	}

	hourCount, err := l.repo.CountSince(ctx, ip, p.Endpoint, now.Add(-time.Hour))
	if err != nil {
		l.logger.Printf("Rate limiting error (hour count) for %s/%s: %v", p.Endpoint, ip, err)
		return true
	}
	if hourCount >= p.PerHour {
		return false
	}

	entry := &model.RequestLogEntry{IPAddress: ip, Endpoint: p.Endpoint, CreatedAt: now}
	if err := l.repo.Create(ctx, entry); err != nil {
		l.logger.Printf("Rate limiting error (log write) for %s/%s: %v", p.Endpoint, ip, err)
	}
	return true
}
