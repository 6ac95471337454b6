package repository

import (
	"context"
	"time"

	"github.com/techq/techq-be/internal/model"
)

// IRequestLogRepository is the append-only store behind rate limiting. Entries
// are only ever inserted and counted.
type IRequestLogRepository interface {
	Create(ctx context.Context, entry *model.RequestLogEntry) error
	CountSince(ctx context.Context, ip string, endpoint model.Endpoint, since time.Time) (int, error)
	Ping(ctx context.Context) error
}
