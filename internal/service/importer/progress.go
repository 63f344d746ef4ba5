package importer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kabataan-backend/internal/domain"
)

// ProgressStore persists the per-user tally of an in-flight batch so
// status reads mid-import see a valid snapshot.
type ProgressStore interface {
	Init(ctx context.Context, userID uuid.UUID, total int64) error
	Set(ctx context.Context, progress domain.ImportProgress) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.ImportProgress, error)
}

type redisProgressStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisProgressStore(client *redis.Client, ttl time.Duration) ProgressStore {
	return &redisProgressStore{redis: client, ttl: ttl}
}

func progressKey(userID uuid.UUID) string {
	return fmt.Sprintf("import:progress:%s", userID)
}

func (s *redisProgressStore) Init(ctx context.Context, userID uuid.UUID, total int64) error {
	key := progressKey(userID)
	if err := s.redis.HSet(ctx, key,
		"total", total,
		"processed", 0,
		"duplicates", 0,
		"errors", 0,
	).Err(); err != nil {
		return err
	}
	return s.redis.Expire(ctx, key, s.ttl).Err()
}

func (s *redisProgressStore) Set(ctx context.Context, progress domain.ImportProgress) error {
	key := progressKey(progress.UserID)
	if err := s.redis.HSet(ctx, key,
		"total", progress.Total,
		"processed", progress.Processed,
		"duplicates", progress.Duplicates,
		"errors", progress.Errors,
	).Err(); err != nil {
		return err
	}
	return s.redis.Expire(ctx, key, s.ttl).Err()
}

func (s *redisProgressStore) Get(ctx context.Context, userID uuid.UUID) (*domain.ImportProgress, error) {
	values, err := s.redis.HGetAll(ctx, progressKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	progress := &domain.ImportProgress{UserID: userID}
	progress.Total = parseField(values, "total")
	progress.Processed = parseField(values, "processed")
	progress.Duplicates = parseField(values, "duplicates")
	progress.Errors = parseField(values, "errors")
	return progress, nil
}

func parseField(values map[string]string, field string) int64 {
	n, _ := strconv.ParseInt(values[field], 10, 64)
	return n
}
