package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/techq/techq-be/internal/model"
)

// requestLogRepository is the SQL implementation of IRequestLogRepository.
// The queries run unchanged on postgres and sqlite.
type requestLogRepository struct {
	db *sql.DB
}

// NewRequestLogRepository is the constructor for requestLogRepository.
func NewRequestLogRepository(db *sql.DB) IRequestLogRepository {
	return &requestLogRepository{db: db}
}

// Create appends a log row. A zero CreatedAt is filled with the current time.
func (r *requestLogRepository) Create(ctx context.Context, entry *model.RequestLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	query := `
		INSERT INTO api_request_log (ip_address, endpoint, created_at)
		VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, entry.IPAddress, string(entry.Endpoint), entry.CreatedAt)
	return err
}

// CountSince counts rows for (ip, endpoint) created at or after since.
func (r *requestLogRepository) CountSince(ctx context.Context, ip string, endpoint model.Endpoint, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM api_request_log
		WHERE ip_address = $1
		  AND endpoint = $2
		  AND created_at >= $3`

	var count int
	err := r.db.QueryRowContext(ctx, query, ip, string(endpoint), since.UTC()).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *requestLogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
