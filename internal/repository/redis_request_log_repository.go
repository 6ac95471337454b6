package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/techq/techq-be/internal/model"
)

// entryTTL bounds how long a key outlives its newest entry. Nothing older than
// the widest window is ever counted.
const entryTTL = time.Hour

// redisRequestLogRepository keeps one sorted set per (endpoint, ip), scored by
// creation time in milliseconds.
type redisRequestLogRepository struct {
	client *redis.Client
}

func NewRedisRequestLogRepository(client *redis.Client) IRequestLogRepository {
	return &redisRequestLogRepository{client: client}
}

func requestLogKey(ip string, endpoint model.Endpoint) string {
	return fmt.Sprintf("api_request_log:%s:%s", endpoint, ip)
}

func (r *redisRequestLogRepository) Create(ctx context.Context, entry *model.RequestLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	key := requestLogKey(entry.IPAddress, entry.Endpoint)

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(entry.CreatedAt.UnixMilli()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, key, entryTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisRequestLogRepository) CountSince(ctx context.Context, ip string, endpoint model.Endpoint, since time.Time) (int, error) {
	count, err := r.client.ZCount(ctx, requestLogKey(ip, endpoint), strconv.FormatInt(since.UnixMilli(), 10), "+inf").Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *redisRequestLogRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
